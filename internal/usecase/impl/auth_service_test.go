package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	passwordPolicy   *mockSvc.MockPasswordPolicy
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	passwordPolicy := mockSvc.NewMockPasswordPolicy(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		PasswordPolicy:   passwordPolicy,
		TokenService:     tokenService,
		Logger:           logger,
	})

	return authServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		passwordPolicy:   passwordPolicy,
		tokenService:     tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:           "test@example.com",
		Name:            "Test User",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
	}

	fx.passwordPolicy.EXPECT().Validate(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueAccessToken(mock.AnythingOfType("uuid.UUID"), input.Email).
		Return("access_token", nil)
	fx.tokenService.EXPECT().
		IssueRefreshToken(mock.AnythingOfType("uuid.UUID")).
		Return("refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
			assert.False(t, token.Revoked)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	// No repository expectations: a confirmation mismatch must be rejected
	// before anything touches the datastore.
	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:           "test@example.com",
		Name:            "Test User",
		Password:        "Password123!",
		PasswordConfirm: "Password456!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_Register_PasswordPolicyViolations(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{
		Email:           "test@example.com",
		Name:            "Test User",
		Password:        "weak",
		PasswordConfirm: "weak",
	}

	fx.passwordPolicy.EXPECT().
		Validate(input.Password).
		Return([]string{"must be at least 8 characters", "must contain a digit"})

	output, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "must be at least 8 characters; must contain a digit", appErr.Details())
}

func TestAuthService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:           "taken@example.com",
		Name:            "Test User",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
	}

	fx.passwordPolicy.EXPECT().Validate(input.Password).Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_ConcurrentDuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:           "raced@example.com",
		Name:            "Test User",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
	}

	fx.passwordPolicy.EXPECT().Validate(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	revoked := false

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(user.ID, user.Email).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(user.ID).Return("refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		RevokeAllByUserID(ctx, user.ID).
		Run(func(ctx context.Context, userID uuid.UUID) {
			revoked = true
		}).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.True(t, revoked, "prior sessions must be revoked before the new token is stored")
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPassword!", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "WrongPassword!",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	// Identical to the unknown-email failure so callers cannot probe which
	// accounts exist.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshAccessToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("raw_refresh").
		Return(&service.RefreshClaims{UserID: user.ID, Type: service.RefreshTokenType})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().
		FindActiveByUserID(ctx, user.ID).
		Return([]*entity.RefreshToken{
			{UserID: user.ID, TokenHash: "stale_hash"},
			{UserID: user.ID, TokenHash: "refresh_token_hash"},
		}, nil)
	fx.tokenService.EXPECT().HashToken("raw_refresh").Return("refresh_token_hash")
	fx.tokenService.EXPECT().IssueAccessToken(user.ID, user.Email).Return("new_access_token", nil)

	// No IssueRefreshToken or CreateRefreshToken expectations: the refresh
	// token is not rotated on refresh.
	output, err := fx.service.RefreshAccessToken(ctx, "raw_refresh")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestAuthService_RefreshAccessToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().VerifyRefreshToken("garbage").Return(nil)

	output, err := fx.service.RefreshAccessToken(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshAccessToken_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		VerifyRefreshToken("raw_refresh").
		Return(&service.RefreshClaims{UserID: userID, Type: service.RefreshTokenType})
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RefreshAccessToken(ctx, "raw_refresh")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenUserNotFound))
}

func TestAuthService_RefreshAccessToken_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("raw_refresh").
		Return(&service.RefreshClaims{UserID: user.ID, Type: service.RefreshTokenType})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().FindActiveByUserID(ctx, user.ID).Return(nil, nil)
	fx.tokenService.EXPECT().HashToken("raw_refresh").Return("refresh_token_hash")

	output, err := fx.service.RefreshAccessToken(ctx, "raw_refresh")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenRevoked))
}

func TestAuthService_RefreshAccessToken_HashMatchesNoActiveRow(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.tokenService.EXPECT().
		VerifyRefreshToken("raw_refresh").
		Return(&service.RefreshClaims{UserID: user.ID, Type: service.RefreshTokenType})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().
		FindActiveByUserID(ctx, user.ID).
		Return([]*entity.RefreshToken{{UserID: user.ID, TokenHash: "other_hash"}}, nil)
	fx.tokenService.EXPECT().HashToken("raw_refresh").Return("refresh_token_hash")

	output, err := fx.service.RefreshAccessToken(ctx, "raw_refresh")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenRevoked))
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().RevokeAllByUserID(ctx, userID).Return(nil).Twice()

	require.NoError(t, fx.service.Logout(ctx, userID))
	require.NoError(t, fx.service.Logout(ctx, userID))
}

func TestAuthService_GetUserFromToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}

	fx.tokenService.EXPECT().
		VerifyAccessToken("access_token").
		Return(&service.AccessClaims{UserID: user.ID, Email: user.Email})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetUserFromToken(ctx, "access_token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_GetUserFromToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().VerifyAccessToken("garbage").Return(nil)

	got, err := fx.service.GetUserFromToken(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_GetUserFromToken_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		VerifyAccessToken("access_token").
		Return(&service.AccessClaims{UserID: userID})
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetUserFromToken(ctx, "access_token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
