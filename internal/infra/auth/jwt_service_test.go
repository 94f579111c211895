package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connect/config"
	"connect/internal/domain/service"
)

func newTestTokenService(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		Issuer:          "utm-connect",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := svc.VerifyAccessToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "utm-connect", claims.Issuer)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	token, err := svc.IssueRefreshToken(userID)
	require.NoError(t, err)

	claims := svc.VerifyRefreshToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.RefreshTokenType, claims.Type)
	assert.Equal(t, "utm-connect", claims.Issuer)
}

func TestJWTService_CrossClassVerificationFails(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	accessToken, err := svc.IssueAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(userID)
	require.NoError(t, err)

	// Distinct secrets: each verifier rejects the other class.
	assert.Nil(t, svc.VerifyRefreshToken(accessToken))
	assert.Nil(t, svc.VerifyAccessToken(refreshToken))
}

func TestJWTService_VerifyReturnsNilNotError(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)

	assert.Nil(t, svc.VerifyAccessToken(""))
	assert.Nil(t, svc.VerifyAccessToken("not-a-jwt"))
	assert.Nil(t, svc.VerifyRefreshToken("header.payload.signature"))
}

func TestJWTService_ExpiredTokenVerifiesToNil(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute, -time.Minute)
	userID := uuid.New()

	accessToken, err := svc.IssueAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(userID)
	require.NoError(t, err)

	assert.Nil(t, svc.VerifyAccessToken(accessToken))
	assert.Nil(t, svc.VerifyRefreshToken(refreshToken))
}

func TestJWTService_TamperedSignatureVerifiesToNil(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "different-access-secret"
	cfg.SecretKey.Refresh = "different-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		Issuer:          "utm-connect",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	foreign, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := foreign.IssueAccessToken(uuid.New(), "user@example.com")
	require.NoError(t, err)

	assert.Nil(t, svc.VerifyAccessToken(token))
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)

	first := svc.HashToken("some-raw-token")
	second := svc.HashToken("some-raw-token")
	different := svc.HashToken("another-raw-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, different)
	assert.NotContains(t, first, "some-raw-token")
	assert.Len(t, first, 64) // SHA-256 hex digest
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute, 7*24*time.Hour)
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
