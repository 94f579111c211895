// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// Raw token values never reach this layer; rows are keyed by one-way hashes.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindActiveByUserID retrieves the non-revoked, non-expired refresh tokens
	// for a user. Under normal operation at most one row is active; callers
	// tolerate extras left behind by a failed revocation.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// RevokeAllByUserID marks every non-revoked token of the user as revoked.
	// Revoking an empty or already-revoked set is a no-op success.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveByUserID returns the number of active sessions for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpiredRefreshTokens removes all expired rows from the database.
	// Expired rows are otherwise only filtered out at verification time; this
	// exists for periodic cleanup.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
