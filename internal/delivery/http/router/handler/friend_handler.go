package handler

import (
	"log/slog"
	"net/http"
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

// FriendHandlerParams holds dependencies for FriendHandler, injected by Fx.
type FriendHandlerParams struct {
	fx.In

	FriendUC usecase.FriendUsecase
	Logger   *slog.Logger
}

// FriendHandler holds dependencies for friendship handlers.
type FriendHandler struct {
	uc     usecase.FriendUsecase
	logger *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler.
func NewFriendHandler(params FriendHandlerParams) *FriendHandler {
	return &FriendHandler{
		uc:     params.FriendUC,
		logger: params.Logger,
	}
}

// friendTargetRequest identifies the other side of a friendship operation.
type friendTargetRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// friendshipResponse is the public projection of a friendship edge.
type friendshipResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requesterId"`
	AddresseeID uuid.UUID `json:"addresseeId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newFriendshipResponse(f *entity.Friendship) *friendshipResponse {
	return &friendshipResponse{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
	}
}

// SendRequest handles sending a friend request to another user.
func (h *FriendHandler) SendRequest(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req friendTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	friendship, err := h.uc.SendRequest(c.Request().Context(), userID, req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFriendshipResponse(friendship), "Friend request sent")
}

// AcceptRequest handles accepting a pending friend request.
func (h *FriendHandler) AcceptRequest(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req friendTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend accept input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	friendship, err := h.uc.AcceptRequest(c.Request().Context(), userID, req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFriendshipResponse(friendship), "Friend request accepted")
}

// DeclineRequest handles declining a pending friend request.
func (h *FriendHandler) DeclineRequest(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req friendTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend decline input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeclineRequest(c.Request().Context(), userID, req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Friend request declined"}, "Friend request declined")
}

// RemoveFriend handles removing an accepted friendship.
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req friendTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend remove input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveFriend(c.Request().Context(), userID, req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Friend removed"}, "Friend removed")
}

// ListFriends handles listing the caller's accepted friends.
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	friends, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(friends), "Friends retrieved successfully")
}

// ListPendingReceived handles listing incoming pending friend requests.
func (h *FriendHandler) ListPendingReceived(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.uc.ListPendingReceived(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users), "Pending requests retrieved successfully")
}

// ListPendingSent handles listing the caller's unanswered outgoing requests.
func (h *FriendHandler) ListPendingSent(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.uc.ListPendingSent(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users), "Sent requests retrieved successfully")
}
