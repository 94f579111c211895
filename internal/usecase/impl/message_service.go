package impl

import (
	"context"
	"log/slog"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMessagePageSize = 50

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	deviceRepo   repository.DeviceRepository
	notification service.NotificationService
	logger       *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo  repository.MessageRepository
	UserRepo     repository.UserRepository
	DeviceRepo   repository.DeviceRepository
	Notification service.NotificationService `optional:"true"`
	Logger       *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo:  params.MessageRepo,
		userRepo:     params.UserRepo,
		deviceRepo:   params.DeviceRepo,
		notification: params.Notification,
		logger:       params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage delivers a message from one user to another, opening the
// conversation on first contact.
func (srv *messageService) SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*entity.Message, error) {
	srv.log(ctx).Debug("Sending message", slog.Any("senderID", senderID), slog.Any("recipientID", recipientID))

	if senderID == recipientID {
		return nil, errors.Wrap(domainerrors.ErrMessageToSelf, "message rejected")
	}

	sender, err := srv.userRepo.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "message rejected")
		}

		return nil, errors.Wrap(err, "failed to find sender")
	}

	if _, err := srv.userRepo.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "message rejected")
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	conversation, err := srv.messageRepo.FindOrCreateConversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open conversation")
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Content:        content,
	}

	if err := srv.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	// Push delivery is best effort: a notification failure never fails the send.
	srv.pushNewMessage(ctx, sender, recipientID, content)

	return message, nil
}

// pushNewMessage notifies the recipient's active devices about the message.
func (srv *messageService) pushNewMessage(ctx context.Context, sender *entity.User, recipientID uuid.UUID, content string) {
	if srv.notification == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load recipient devices for push", slog.Any("error", err), slog.Any("recipientID", recipientID))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	body := content
	if len(body) > 120 {
		body = body[:117] + "..."
	}

	data := map[string]string{
		"type":      "new_message",
		"sender_id": sender.ID.String(),
	}

	_, failureCount, invalidTokens, err := srv.notification.SendBatchNotification(ctx, tokens, sender.Name, body, data)
	if err != nil {
		srv.log(ctx).Warn("Failed to push message notification", slog.Any("error", err), slog.Any("recipientID", recipientID))

		return
	}

	if failureCount > 0 {
		srv.log(ctx).Debug("Some message notifications failed", slog.Int("failures", failureCount))
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid device tokens", slog.Any("error", err))
		}
	}
}

// ListConversations retrieves the user's threads, most recently active first.
func (srv *messageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationSummary, error) {
	conversations, err := srv.messageRepo.FindConversationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	if len(conversations) == 0 {
		return []*usecase.ConversationSummary{}, nil
	}

	unread, err := srv.messageRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	peerIDs := make([]uuid.UUID, 0, len(conversations))
	for _, conversation := range conversations {
		peerIDs = append(peerIDs, conversation.OtherParticipant(userID))
	}

	peers, err := srv.userRepo.FindByIDs(ctx, peerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation peers")
	}

	peersByID := make(map[uuid.UUID]*entity.User, len(peers))
	for _, peer := range peers {
		peersByID[peer.ID] = peer
	}

	summaries := make([]*usecase.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summaries = append(summaries, &usecase.ConversationSummary{
			Conversation: conversation,
			Peer:         peersByID[conversation.OtherParticipant(userID)],
			UnreadCount:  unread[conversation.ID],
		})
	}

	return summaries, nil
}

// ListMessages retrieves a page of messages in a thread the user participates in.
func (srv *messageService) ListMessages(ctx context.Context, conversationID, userID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	if _, err := srv.loadParticipantConversation(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := srv.messageRepo.FindMessagesByConversation(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// MarkConversationRead marks every message addressed to the user in the thread as read.
func (srv *messageService) MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	if _, err := srv.loadParticipantConversation(ctx, conversationID, userID); err != nil {
		return err
	}

	if err := srv.messageRepo.MarkConversationRead(ctx, conversationID, userID); err != nil {
		return errors.Wrap(err, "failed to mark conversation read")
	}

	return nil
}

// loadParticipantConversation loads a conversation and checks the user belongs to it.
func (srv *messageService) loadParticipantConversation(ctx context.Context, conversationID, userID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.messageRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "conversation lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if !conversation.HasParticipant(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotConversationMember, "access rejected")
	}

	return conversation, nil
}
