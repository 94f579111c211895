package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines the data required to create a new group.
type CreateGroupInput struct {
	Name      string
	CreatorID uuid.UUID
}

// GroupUsecase defines the interface for group operations.
type GroupUsecase interface {
	// CreateGroup creates a group with the creator as its first member.
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*entity.Group, error)

	// GetGroup retrieves a group by ID, including its member IDs.
	GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// ListGroupsByUser retrieves all groups the user belongs to.
	ListGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)

	// JoinGroup adds the user to the group.
	JoinGroup(ctx context.Context, groupID, userID uuid.UUID) error

	// LeaveGroup removes the user from the group. Leaving a group the user is
	// not a member of is a no-op.
	LeaveGroup(ctx context.Context, groupID, userID uuid.UUID) error

	// DeleteGroup removes a group and its memberships.
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}
