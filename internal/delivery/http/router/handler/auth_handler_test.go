package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connect/internal/delivery/http/middleware"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase implements usecase.AuthUsecase with swappable functions
// so each test controls exactly one path.
type stubAuthUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
	refreshFn  func(ctx context.Context, raw string) (*usecase.RefreshOutput, error)
	logoutFn   func(ctx context.Context, userID uuid.UUID) error
	fromToken  func(ctx context.Context, accessToken string) (*entity.User, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthUsecase) RefreshAccessToken(ctx context.Context, raw string) (*usecase.RefreshOutput, error) {
	return s.refreshFn(ctx, raw)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.logoutFn(ctx, userID)
}

func (s *stubAuthUsecase) GetUserFromToken(ctx context.Context, accessToken string) (*entity.User, error) {
	return s.fromToken(ctx, accessToken)
}

func newTestAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		refreshTTL: 7 * 24 * time.Hour,
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Register_SetsRefreshCookie(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "new@example.com", Name: "New User"}
	uc := &stubAuthUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "new@example.com", input.Email)

			return &usecase.AuthOutput{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				User:         user,
			}, nil
		},
	}
	h := newTestAuthHandler(uc)

	e := echo.New()
	body := `{"email":"new@example.com","name":"New User","password":"Password123","passwordConfirm":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := findCookie(t, rec, refreshCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	// The refresh token must not leak into the body.
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.NotContains(t, rec.Body.String(), "refresh-token")
}

func TestAuthHandler_Login_ReturnsAccessTokenInBody(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Name: "A"}
	uc := &stubAuthUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "a@example.com", input.Email)

			return &usecase.AuthOutput{
				AccessToken:  "fresh-access",
				RefreshToken: "fresh-refresh",
				User:         user,
			}, nil
		},
	}
	h := newTestAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@example.com","password":"Password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-access")

	cookie := findCookie(t, rec, refreshCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh-refresh", cookie.Value)
}

func TestAuthHandler_Refresh_ReadsTokenFromCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		refreshFn: func(_ context.Context, raw string) (*usecase.RefreshOutput, error) {
			assert.Equal(t, "cookie-refresh", raw)

			return &usecase.RefreshOutput{AccessToken: "rotated-access"}, nil
		},
	}
	h := newTestAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "cookie-refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rotated-access")
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	h := newTestAuthHandler(&stubAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	userID := uuid.New()
	uc := &stubAuthUsecase{
		logoutFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, userID, id)

			return nil
		},
	}
	h := newTestAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, refreshCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Me_MissingHeader(t *testing.T) {
	h := newTestAuthHandler(&stubAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me_ReturnsUserWithoutHash(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "me@example.com",
		Name:         "Me",
		PasswordHash: "$2a$10$secret",
	}
	uc := &stubAuthUsecase{
		fromToken: func(_ context.Context, accessToken string) (*entity.User, error) {
			assert.Equal(t, "good-token", accessToken)

			return user, nil
		},
	}
	h := newTestAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
	assert.NotContains(t, rec.Body.String(), "secret")
}
