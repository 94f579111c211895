package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateProfileInput struct {
	Name            *string
	PhoneNumber     *string
	UniversityGroup *string
	PhotoURL        *string
	PrimaryPhotoURL *string
}

// UserUsecase defines the interface for user profile operations.
type UserUsecase interface {
	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves every user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateProfile applies the given profile changes and returns the updated user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
