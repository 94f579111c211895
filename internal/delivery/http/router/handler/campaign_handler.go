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

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign handlers.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler.
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		uc:     params.CampaignUC,
		logger: params.Logger,
	}
}

// createCampaignRequest is the body for creating a campaign.
type createCampaignRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// updateCampaignRequest is the body for editing a campaign.
type updateCampaignRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// campaignResponse is the public projection of a campaign.
type campaignResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCampaignResponse(cp *entity.Campaign) *campaignResponse {
	return &campaignResponse{
		ID:          cp.ID,
		UserID:      cp.UserID,
		Name:        cp.Name,
		Description: cp.Description,
		CreatedAt:   cp.CreatedAt,
	}
}

func newCampaignResponses(campaigns []*entity.Campaign) []*campaignResponse {
	out := make([]*campaignResponse, 0, len(campaigns))
	for _, cp := range campaigns {
		out = append(out, newCampaignResponse(cp))
	}

	return out
}

// campaignDetailResponse is a campaign together with its links.
type campaignDetailResponse struct {
	Campaign *campaignResponse `json:"campaign"`
	Links    []*linkSummary    `json:"links"`
}

// linkSummary projects a link inside a campaign detail without repeating
// the campaign reference.
type linkSummary struct {
	ID          uuid.UUID `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCampaign handles registering a new campaign for the caller.
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), &usecase.CreateCampaignInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCampaignResponse(campaign), "Campaign created successfully")
}

// GetCampaign handles fetching a campaign together with its links.
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	campaign, links, err := h.uc.GetCampaign(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	detail := &campaignDetailResponse{
		Campaign: newCampaignResponse(campaign),
		Links:    make([]*linkSummary, 0, len(links)),
	}
	for _, l := range links {
		detail.Links = append(detail.Links, &linkSummary{
			ID:          l.ID,
			OriginalURL: l.OriginalURL,
			ShortCode:   l.ShortCode,
			Clicks:      l.Clicks,
			CreatedAt:   l.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, detail, "Campaign retrieved successfully")
}

// ListByUser handles listing every campaign owned by the given user.
func (h *CampaignHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	campaigns, err := h.uc.ListCampaignsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignResponses(campaigns), "Campaigns retrieved successfully")
}

// UpdateCampaign handles editing a campaign the caller owns.
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	campaign, err := h.uc.UpdateCampaign(c.Request().Context(), campaignID, userID, &usecase.UpdateCampaignInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignResponse(campaign), "Campaign updated successfully")
}

// DeleteCampaign handles removing a campaign the caller owns. The
// campaign's links survive, detached.
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	if err := h.uc.DeleteCampaign(c.Request().Context(), campaignID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Campaign deleted"}, "Campaign deleted successfully")
}
