// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	PasswordConfirm string
	Role            string
	UniversityGroup string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the token pair and the user's public identity after a
// successful register or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the newly issued access token. The refresh token is
// never rotated on refresh, so it is absent here.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and immediately opens a session for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a fresh session, revoking every
	// prior active refresh token of the user.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshAccessToken exchanges a valid refresh token for a new access token.
	RefreshAccessToken(ctx context.Context, rawRefreshToken string) (*RefreshOutput, error)

	// Logout revokes all active refresh tokens for the user. Idempotent.
	Logout(ctx context.Context, userID uuid.UUID) error

	// GetUserFromToken resolves an access token to its full user record.
	GetUserFromToken(ctx context.Context, accessToken string) (*entity.User, error)
}
