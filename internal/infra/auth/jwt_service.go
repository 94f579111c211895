// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"connect/config"
	"connect/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with independent secrets so a leaked
// secret of one class cannot forge tokens of the other.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	issuer        string        // Issuer claim stamped into every token.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		issuer:        cfg.Auth.Issuer,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccessToken creates a short-lived access token embedding the user's
// identity and email.
func (s *jwtService) IssueAccessToken(userID uuid.UUID, email string) (string, error) {
	claims := service.AccessClaims{
		UserID:           userID,
		Email:            email,
		RegisteredClaims: s.registeredClaims(s.accessTTL),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
}

// IssueRefreshToken creates a long-lived refresh token carrying the
// refresh-class discriminator.
func (s *jwtService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	claims := service.RefreshClaims{
		UserID:           userID,
		Type:             service.RefreshTokenType,
		RegisteredClaims: s.registeredClaims(s.refreshTTL),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.refreshSecret))
}

// VerifyAccessToken validates an access token and returns its claims.
// Any parsing, signature, or expiry failure yields nil; the caller treats nil
// as "unauthenticated" without seeing the underlying error.
func (s *jwtService) VerifyAccessToken(tokenString string) *service.AccessClaims {
	claims := &service.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.accessSecret))
	if err != nil || !token.Valid {
		return nil
	}

	return claims
}

// VerifyRefreshToken validates a refresh token, including its discriminator
// claim. Returns nil on any failure.
func (s *jwtService) VerifyRefreshToken(tokenString string) *service.RefreshClaims {
	claims := &service.RefreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.refreshSecret))
	if err != nil || !token.Valid {
		return nil
	}
	if claims.Type != service.RefreshTokenType {
		return nil
	}

	return claims
}

// HashToken produces the SHA-256 hex digest under which raw refresh tokens
// are persisted. The raw token value never reaches the database.
func (s *jwtService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()

	return jwt.RegisteredClaims{
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) keyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}
}
