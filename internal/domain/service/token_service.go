package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RefreshTokenType is the discriminator claim value marking refresh-class tokens.
const RefreshTokenType = "refresh"

// AccessClaims defines the claims embedded in short-lived access tokens.
type AccessClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims defines the claims embedded in long-lived refresh tokens.
// Type discriminates refresh tokens from access tokens even though the two
// classes are already signed with distinct secrets.
type RefreshClaims struct {
	UserID uuid.UUID `json:"userId"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
// This abstracts the details of token creation from the use cases.
//
// The Verify methods deliberately return nil instead of an error on any
// malformed, expired, or wrongly signed token: callers treat nil as
// "unauthenticated" and never see the underlying verification failure.
type TokenService interface {
	// IssueAccessToken creates a short-lived access token for the user.
	IssueAccessToken(userID uuid.UUID, email string) (string, error)

	// IssueRefreshToken creates a long-lived refresh token for the user.
	IssueRefreshToken(userID uuid.UUID) (string, error)

	// VerifyAccessToken validates an access token string. Returns nil on any failure.
	VerifyAccessToken(tokenString string) *AccessClaims

	// VerifyRefreshToken validates a refresh token string, including its
	// discriminator claim. Returns nil on any failure.
	VerifyRefreshToken(tokenString string) *RefreshClaims

	// HashToken produces the one-way hash under which a raw refresh token
	// is persisted and later compared.
	HashToken(raw string) string

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
