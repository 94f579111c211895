package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service      usecase.MessageUsecase
	messageRepo  *mockRepo.MockMessageRepository
	userRepo     *mockRepo.MockUserRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	notification *mockSvc.MockNotificationService
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notification := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		MessageRepo:  messageRepo,
		UserRepo:     userRepo,
		DeviceRepo:   deviceRepo,
		Notification: notification,
		Logger:       logger,
	})

	return messageServiceFixtures{
		service:      service,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		deviceRepo:   deviceRepo,
		notification: notification,
	}
}

// createTestMessageServiceWithoutPush builds the service as deployments
// without a push provider run it.
func createTestMessageServiceWithoutPush(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		DeviceRepo:  deviceRepo,
		Logger:      logger,
	})

	return messageServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		deviceRepo:  deviceRepo,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(&entity.User{ID: recipientID}, nil)
	fx.messageRepo.EXPECT().FindOrCreateConversation(ctx, sender.ID, recipientID).Return(conversation, nil)
	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = uuid.New()
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{{FCMToken: "token-1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Alice", "hello there", map[string]string{
			"type":      "new_message",
			"sender_id": sender.ID.String(),
		}).
		Return(1, 0, nil, nil)

	message, err := fx.service.SendMessage(ctx, sender.ID, recipientID, "hello there")

	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, conversation.ID, message.ConversationID)
	assert.Equal(t, sender.ID, message.SenderID)
	assert.Equal(t, "hello there", message.Content)
}

func TestMessageService_SendMessage_ToSelf(t *testing.T) {
	fx := createTestMessageService(t)

	userID := uuid.New()

	message, err := fx.service.SendMessage(context.Background(), userID, userID, "hi me")

	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageToSelf))
}

func TestMessageService_SendMessage_RecipientMissing(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(nil, repository.ErrUserNotFound)

	message, err := fx.service.SendMessage(ctx, sender.ID, recipientID, "hello")

	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_SendMessage_PushFailureDoesNotFailSend(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(&entity.User{ID: recipientID}, nil)
	fx.messageRepo.EXPECT().
		FindOrCreateConversation(ctx, sender.ID, recipientID).
		Return(&entity.Conversation{ID: uuid.New()}, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{{FCMToken: "token-1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Alice", "hello", mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	message, err := fx.service.SendMessage(ctx, sender.ID, recipientID, "hello")

	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_SendMessage_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(&entity.User{ID: recipientID}, nil)
	fx.messageRepo.EXPECT().
		FindOrCreateConversation(ctx, sender.ID, recipientID).
		Return(&entity.Conversation{ID: uuid.New()}, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{{FCMToken: "stale"}, {FCMToken: "fresh"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"stale", "fresh"}, "Alice", "hello", mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"stale"}).Return(nil)

	_, err := fx.service.SendMessage(ctx, sender.ID, recipientID, "hello")

	require.NoError(t, err)
}

func TestMessageService_SendMessage_TruncatesLongPushBody(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()
	content := strings.Repeat("a", 200)

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(&entity.User{ID: recipientID}, nil)
	fx.messageRepo.EXPECT().
		FindOrCreateConversation(ctx, sender.ID, recipientID).
		Return(&entity.Conversation{ID: uuid.New()}, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{{FCMToken: "token-1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Alice", strings.Repeat("a", 117)+"...", mock.Anything).
		Return(1, 0, nil, nil)

	message, err := fx.service.SendMessage(ctx, sender.ID, recipientID, content)

	require.NoError(t, err)

	// The stored message keeps the full content; only the push body is cut.
	assert.Equal(t, content, message.Content)
}

func TestMessageService_SendMessage_NoPushProviderConfigured(t *testing.T) {
	fx := createTestMessageServiceWithoutPush(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Name: "Alice"}
	recipientID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sender.ID).Return(sender, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(&entity.User{ID: recipientID}, nil)
	fx.messageRepo.EXPECT().
		FindOrCreateConversation(ctx, sender.ID, recipientID).
		Return(&entity.Conversation{ID: uuid.New()}, nil)
	fx.messageRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)

	message, err := fx.service.SendMessage(ctx, sender.ID, recipientID, "hello")

	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_ListConversations(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	peerID := uuid.New()
	first, second := entity.CanonicalPair(userID, peerID)
	conversation := &entity.Conversation{ID: uuid.New(), FirstUserID: first, SecondUserID: second}

	fx.messageRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return([]*entity.Conversation{conversation}, nil)
	fx.messageRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(map[uuid.UUID]int64{conversation.ID: 3}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{peerID}).
		Return([]*entity.User{{ID: peerID, Name: "Bob"}}, nil)

	summaries, err := fx.service.ListConversations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, conversation.ID, summaries[0].Conversation.ID)
	assert.Equal(t, peerID, summaries[0].Peer.ID)
	assert.Equal(t, int64(3), summaries[0].UnreadCount)
}

func TestMessageService_ListMessages_NotParticipant(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := &entity.Conversation{
		ID:           uuid.New(),
		FirstUserID:  uuid.New(),
		SecondUserID: uuid.New(),
	}
	outsiderID := uuid.New()

	fx.messageRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)

	messages, err := fx.service.ListMessages(ctx, conversation.ID, outsiderID, 0, 0)

	require.Error(t, err)
	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, domainerrors.ErrNotConversationMember))
}

func TestMessageService_ListMessages_DefaultsPageSize(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	peerID := uuid.New()
	first, second := entity.CanonicalPair(userID, peerID)
	conversation := &entity.Conversation{ID: uuid.New(), FirstUserID: first, SecondUserID: second}

	fx.messageRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.messageRepo.EXPECT().
		FindMessagesByConversation(ctx, conversation.ID, defaultMessagePageSize, 0).
		Return([]*entity.Message{}, nil)

	messages, err := fx.service.ListMessages(ctx, conversation.ID, userID, 0, -5)

	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageService_MarkConversationRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	peerID := uuid.New()
	first, second := entity.CanonicalPair(userID, peerID)
	conversation := &entity.Conversation{ID: uuid.New(), FirstUserID: first, SecondUserID: second}

	fx.messageRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.messageRepo.EXPECT().MarkConversationRead(ctx, conversation.ID, userID).Return(nil)

	require.NoError(t, fx.service.MarkConversationRead(ctx, conversation.ID, userID))
}

func TestMessageService_MarkConversationRead_ConversationMissing(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.messageRepo.EXPECT().
		FindConversationByID(ctx, conversationID).
		Return(nil, repository.ErrConversationNotFound)

	err := fx.service.MarkConversationRead(ctx, conversationID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationNotFound))
}
