package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler holds dependencies for direct messaging handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		uc:     params.MessageUC,
		logger: params.Logger,
	}
}

// sendMessageRequest is the body for sending a direct message.
type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

// messageResponse is the public projection of a message.
type messageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newMessageResponse(m *entity.Message) *messageResponse {
	return &messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

func newMessageResponses(messages []*entity.Message) []*messageResponse {
	out := make([]*messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, newMessageResponse(m))
	}

	return out
}

// conversationSummaryResponse is a thread listing entry for the caller.
type conversationSummaryResponse struct {
	ConversationID uuid.UUID     `json:"conversationId"`
	Peer           *userResponse `json:"peer"`
	UnreadCount    int64         `json:"unreadCount"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// SendMessage handles delivering a direct message to another user.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipientID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipient ID")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SendMessage(c.Request().Context(), userID, recipientID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMessageResponse(message), "Message sent successfully")
}

// ListConversations handles listing the caller's threads with unread counts.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summaries, err := h.uc.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*conversationSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, &conversationSummaryResponse{
			ConversationID: s.Conversation.ID,
			Peer:           newUserResponse(s.Peer),
			UnreadCount:    s.UnreadCount,
			UpdatedAt:      s.Conversation.UpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Conversations retrieved successfully")
}

// ListMessages handles fetching a page of messages in a thread the caller
// participates in.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	messages, err := h.uc.ListMessages(c.Request().Context(), conversationID, userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMessageResponses(messages), "Messages retrieved successfully")
}

// MarkRead handles marking every message addressed to the caller in the
// thread as read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}

	if err := h.uc.MarkConversationRead(c.Request().Context(), conversationID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Conversation marked as read"}, "Conversation marked as read")
}
