// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userResponse is the public projection of a user. The password hash never
// leaves the server.
type userResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	UniversityGroup string    `json:"universityGroup,omitempty"`
	Role            string    `json:"role"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	PrimaryPhotoURL string    `json:"primaryPhotoUrl,omitempty"`
	JoinedAt        time.Time `json:"joinedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newUserResponse(u *entity.User) *userResponse {
	return &userResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PhoneNumber:     u.PhoneNumber,
		UniversityGroup: u.UniversityGroup,
		Role:            u.Role.String(),
		PhotoURL:        u.PhotoURL,
		PrimaryPhotoURL: u.PrimaryPhotoURL,
		JoinedAt:        u.JoinedAt,
		CreatedAt:       u.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return out
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	AuthUC   usecase.AuthUsecase
	FriendUC usecase.FriendUsecase
	GroupUC  usecase.GroupUsecase
	PostUC   usecase.PostUsecase
	Logger   *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	authUC   usecase.AuthUsecase
	friendUC usecase.FriendUsecase
	groupUC  usecase.GroupUsecase
	postUC   usecase.PostUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:       params.UserUC,
		authUC:   params.AuthUC,
		friendUC: params.FriendUC,
		groupUC:  params.GroupUC,
		postUC:   params.PostUC,
		logger:   params.Logger,
	}
}

// CreateUser handles administrative user creation. The account goes through
// the same policy and hashing pipeline as self-registration; only the user
// is returned, no session is opened for the caller.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	output, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "User created successfully")
}

// ListUsers handles the request to list every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users), "Users retrieved successfully")
}

// GetUser handles the request to fetch a single user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User retrieved successfully")
}

// profileInfo is the authenticated user's profile with activity counts.
type profileInfo struct {
	User         *userResponse `json:"user"`
	FriendsCount int           `json:"friendsCount"`
	GroupsCount  int           `json:"groupsCount"`
	PostsCount   int           `json:"postsCount"`
}

// GetMyInfo handles the request for the caller's profile card: the account
// record plus friend, group, and post counts.
func (h *UserHandler) GetMyInfo(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()

	user, err := h.uc.GetUser(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	friends, err := h.friendUC.ListFriends(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	groups, err := h.groupUC.ListGroupsByUser(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	posts, err := h.postUC.ListPostsByAuthor(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileInfo{
		User:         newUserResponse(user),
		FriendsCount: len(friends),
		GroupsCount:  len(groups),
		PostsCount:   len(posts),
	}, "Profile retrieved successfully")
}

// UpdateProfile handles the request to update the caller's profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile updated successfully")
}

// DeleteUser handles the request to remove a user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}
