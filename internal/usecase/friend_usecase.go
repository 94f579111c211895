package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendUsecase defines the interface for friendship operations.
type FriendUsecase interface {
	// SendRequest creates a pending friend request from one user to another.
	SendRequest(ctx context.Context, fromID, toID uuid.UUID) (*entity.Friendship, error)

	// AcceptRequest accepts a pending request addressed to the user.
	AcceptRequest(ctx context.Context, userID, requesterID uuid.UUID) (*entity.Friendship, error)

	// DeclineRequest removes a pending request addressed to the user.
	DeclineRequest(ctx context.Context, userID, requesterID uuid.UUID) error

	// RemoveFriend deletes an accepted friendship between two users.
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// ListFriends retrieves the user's accepted friends.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// ListPendingReceived retrieves users whose requests await the user's answer.
	ListPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// ListPendingSent retrieves users the user has sent unanswered requests to.
	ListPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
}
