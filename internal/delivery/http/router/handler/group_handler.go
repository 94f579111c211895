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

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for group handlers.
type GroupHandler struct {
	uc     usecase.GroupUsecase
	logger *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler.
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		uc:     params.GroupUC,
		logger: params.Logger,
	}
}

// createGroupRequest is the body for creating a group.
type createGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// groupResponse is the public projection of a group.
type groupResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"memberIds,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func newGroupResponse(g *entity.Group) *groupResponse {
	return &groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		MemberIDs: g.MemberIDs,
		CreatedAt: g.CreatedAt,
	}
}

func newGroupResponses(groups []*entity.Group) []*groupResponse {
	out := make([]*groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, newGroupResponse(g))
	}

	return out
}

// CreateGroup handles creating a group with the caller as its first member.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	group, err := h.uc.CreateGroup(c.Request().Context(), &usecase.CreateGroupInput{
		Name:      req.Name,
		CreatorID: userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newGroupResponse(group), "Group created successfully")
}

// GetGroup handles fetching a single group with its members.
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group ID")
	}

	group, err := h.uc.GetGroup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGroupResponse(group), "Group retrieved successfully")
}

// ListMyGroups handles listing every group the caller belongs to.
func (h *GroupHandler) ListMyGroups(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	groups, err := h.uc.ListGroupsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGroupResponses(groups), "Groups retrieved successfully")
}

// AddMember handles adding a user to a group.
func (h *GroupHandler) AddMember(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group ID")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.JoinGroup(c.Request().Context(), groupID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Member added"}, "Member added successfully")
}

// RemoveMember handles removing a user from a group.
func (h *GroupHandler) RemoveMember(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group ID")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.LeaveGroup(c.Request().Context(), groupID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Member removed"}, "Member removed successfully")
}

// DeleteGroup handles deleting a group and its memberships.
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group ID")
	}

	if err := h.uc.DeleteGroup(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Group deleted"}, "Group deleted successfully")
}
