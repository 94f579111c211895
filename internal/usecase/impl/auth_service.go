// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	passwordPolicy   service.PasswordPolicy
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	PasswordPolicy   service.PasswordPolicy
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		passwordPolicy:   params.PasswordPolicy,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process. Input checks
// run before any datastore write, so a rejected registration leaves no
// partial user row behind.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if input.Password != input.PasswordConfirm {
		srv.log(ctx).Warn("Password confirmation mismatch during registration", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "registration rejected")
	}

	if violations := srv.passwordPolicy.Validate(input.Password); len(violations) > 0 {
		srv.log(ctx).Warn("Password policy violation during registration",
			slog.String("email", input.Email),
			slog.Int("violations", len(violations)))

		return nil, errors.Wrap(
			domainerrors.ErrPasswordPolicy.WithDetails(strings.Join(violations, "; ")),
			"registration rejected",
		)
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Registration with already registered email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:           input.Email,
		Name:            input.Name,
		PasswordHash:    hashedPassword,
		Role:            entity.RoleFromString(input.Role),
		UniversityGroup: input.UniversityGroup,
		JoinedAt:        time.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration for the same email surfaces here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(ctx, newUser)
	if err != nil {
		return nil, err
	}

	// First session for a brand-new account: nothing to revoke beforehand.
	if err := srv.persistRefreshToken(ctx, newUser.ID, refreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUser,
	}, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// Unknown email and wrong password produce the same error so a caller
	// cannot probe which accounts exist.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	// Revoke-then-insert keeps at most one usable refresh token per user.
	// The two writes are deliberately not wrapped in a transaction: two
	// simultaneous logins for the same user can briefly leave two active
	// rows, an accepted low-severity race.
	if err := srv.refreshTokenRepo.RevokeAllByUserID(ctx, user.ID); err != nil {
		srv.log(ctx).Error("Failed to revoke prior sessions during login", slog.Any("error", err), slog.Any("userID", user.ID))

		return nil, errors.Wrap(err, "failed to revoke prior refresh tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
// The refresh token itself is not rotated on refresh in this design.
func (srv *authService) RefreshAccessToken(ctx context.Context, rawRefreshToken string) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims := srv.tokenService.VerifyRefreshToken(rawRefreshToken)
	if claims == nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenUserNotFound, "refresh rejected")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	active, err := srv.refreshTokenRepo.FindActiveByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active refresh tokens")
	}

	// At most one active row is expected per user, so the linear scan is
	// cheap. Extras left behind by a failed revocation are tolerated.
	tokenHash := srv.tokenService.HashToken(rawRefreshToken)
	if !matchesAnyTokenHash(tokenHash, active) {
		srv.log(ctx).Warn("Refresh with revoked or unknown token", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenRevoked, "refresh rejected")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout revokes all active refresh tokens for the user. Revoking an empty
// or already-revoked set is a no-op success, so logout is idempotent.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.RevokeAllByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh tokens during logout", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// GetUserFromToken resolves an access token to its full user record.
func (srv *authService) GetUserFromToken(ctx context.Context, accessToken string) (*entity.User, error) {
	claims := srv.tokenService.VerifyAccessToken(accessToken)
	if claims == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token user missing")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (srv *authService) issueTokenPair(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err), slog.Any("userID", user.ID))

		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue refresh token", slog.Any("error", err), slog.Any("userID", user.ID))

		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	return accessToken, refreshToken, nil
}

func (srv *authService) persistRefreshToken(ctx context.Context, userID uuid.UUID, rawRefreshToken string) error {
	newToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// matchesAnyTokenHash compares the presented hash against every candidate in
// constant time per candidate.
func matchesAnyTokenHash(tokenHash string, candidates []*entity.RefreshToken) bool {
	matched := false
	for _, candidate := range candidates {
		if subtle.ConstantTimeCompare([]byte(tokenHash), []byte(candidate.TokenHash)) == 1 {
			matched = true
		}
	}

	return matched
}
