package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationSummary is a thread listing entry: the conversation, the peer's
// identity, and how many messages the viewer has not read yet.
type ConversationSummary struct {
	Conversation *entity.Conversation
	Peer         *entity.User
	UnreadCount  int64
}

// MessageUsecase defines the interface for direct messaging operations.
type MessageUsecase interface {
	// SendMessage delivers a message from one user to another, opening the
	// conversation on first contact and pushing a notification to the
	// recipient's registered devices.
	SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*entity.Message, error)

	// ListConversations retrieves the user's threads, most recently active first.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error)

	// ListMessages retrieves a page of messages in a thread the user
	// participates in, newest first.
	ListMessages(ctx context.Context, conversationID, userID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkConversationRead marks every message addressed to the user in the
	// thread as read.
	MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) error
}
