// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// MessageRepository defines the interface for direct-message database operations.
type MessageRepository interface {
	// FindOrCreateConversation returns the thread between two users, creating
	// it on first contact. The participant pair is canonicalized before lookup.
	FindOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error)

	// FindConversationByID retrieves a conversation by its unique ID.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindConversationsByUser retrieves the user's threads, most recently active first.
	FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// CreateMessage persists a new message and bumps the thread's activity timestamp.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessagesByConversation retrieves a page of messages in a thread, newest first.
	FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkConversationRead marks every message in the thread not sent by the
	// reader as read. Marking an already-read thread is a no-op.
	MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) error

	// CountUnreadByUser returns the number of unread messages addressed to the
	// user, keyed by conversation ID.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
}
