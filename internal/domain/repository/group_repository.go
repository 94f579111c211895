// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrDuplicateGroupMember is returned when a user is already a member of the group.
	ErrDuplicateGroupMember = errors.New("user is already a group member")
)

// GroupRepository defines the interface for group-related database operations.
type GroupRepository interface {
	// CreateGroup persists a new group.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group by its unique ID, including member IDs.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindGroupsByUser retrieves all groups the user belongs to.
	FindGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)

	// UpdateGroup updates an existing group record.
	UpdateGroup(ctx context.Context, group *entity.Group) error

	// DeleteGroup removes a group and its memberships.
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// AddMember links a user to a group.
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error

	// RemoveMember unlinks a user from a group. Removing a non-member is a no-op.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
}
