package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connect/config"
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshCookieName is the cookie carrying the long-lived refresh token.
// The access token travels in the response body and is never set as a cookie.
const refreshCookieName = "refresh_token"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	logger     *slog.Logger
	refreshTTL time.Duration
	secure     bool
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:         params.AuthUC,
		logger:     params.Logger,
		refreshTTL: params.Config.Auth.RefreshTokenTTL,
		secure:     params.Config.Env.Env == "production",
	}
}

// authPayload is the body returned by register and login. The refresh token
// is deliberately absent: it lives only in the HttpOnly cookie.
type authPayload struct {
	AccessToken string        `json:"accessToken"`
	User        *userResponse `json:"user"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusCreated, authPayload{
		AccessToken: output.AccessToken,
		User:        newUserResponse(output.User),
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, authPayload{
		AccessToken: output.AccessToken,
		User:        newUserResponse(output.User),
	}, "Login successful")
}

// refreshRequest is the fallback body for clients that cannot send cookies.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges the refresh token for a new access token. The token is
// read from the cookie when present, otherwise from the request body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	raw := ""
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		raw = cookie.Value
	}
	if raw == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			raw = req.RefreshToken
		}
	}
	if raw == "" {
		return response.Unauthorized(c, "INVALID_REFRESH_TOKEN", "Refresh token is missing")
	}

	output, err := h.uc.RefreshAccessToken(c.Request().Context(), raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"accessToken": output.AccessToken,
	}, "Token refreshed successfully")
}

// Logout revokes every active session of the authenticated user and clears
// the refresh cookie. Repeating a logout succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me resolves the bearer token to the caller's full account record. The
// token is parsed here rather than by the auth middleware so a valid token
// whose user no longer exists yields 404 instead of 401.
func (h *AuthHandler) Me(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	user, err := h.uc.GetUserFromToken(c.Request().Context(), tokenString)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile retrieved successfully")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
