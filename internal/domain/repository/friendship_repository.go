// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when no edge exists between two users.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when an edge between two users already exists.
	ErrDuplicateFriendship = errors.New("friendship already exists")
)

// FriendshipRepository defines the interface for friendship-related database operations.
type FriendshipRepository interface {
	// CreateFriendship persists a new pending friend request edge.
	CreateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// FindBetween retrieves the edge connecting two users in either direction.
	FindBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Friendship, error)

	// UpdateFriendship updates an existing edge, typically to flip its status.
	UpdateFriendship(ctx context.Context, friendship *entity.Friendship) error

	// DeleteFriendship removes the edge connecting two users in either direction.
	DeleteFriendship(ctx context.Context, userA, userB uuid.UUID) error

	// FindAcceptedByUser retrieves all accepted edges touching the user.
	FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindPendingReceived retrieves pending requests addressed to the user.
	FindPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// FindPendingSent retrieves pending requests the user has sent.
	FindPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
}
