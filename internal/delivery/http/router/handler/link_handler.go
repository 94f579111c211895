package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connect/config"
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Config *config.Config
	Logger *slog.Logger
}

// LinkHandler holds dependencies for short-link handlers.
type LinkHandler struct {
	uc           usecase.LinkUsecase
	logger       *slog.Logger
	shortBaseURL string
}

// NewLinkHandler is the constructor for LinkHandler.
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		uc:           params.LinkUC,
		logger:       params.Logger,
		shortBaseURL: strings.TrimRight(params.Config.Links.ShortBaseURL, "/"),
	}
}

// createLinkRequest is the body for creating a short link.
type createLinkRequest struct {
	OriginalURL string     `json:"originalUrl" validate:"required,url"`
	ShortCode   string     `json:"shortCode"`
	CampaignID  *uuid.UUID `json:"campaignId"`
}

// linkResponse is the public projection of a short link.
type linkResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	CampaignID  *uuid.UUID `json:"campaignId,omitempty"`
	OriginalURL string     `json:"originalUrl"`
	ShortCode   string     `json:"shortCode"`
	ShortURL    string     `json:"shortUrl"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (h *LinkHandler) newLinkResponse(l *entity.Link) *linkResponse {
	return &linkResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		CampaignID:  l.CampaignID,
		OriginalURL: l.OriginalURL,
		ShortCode:   l.ShortCode,
		ShortURL:    h.shortBaseURL + "/" + l.ShortCode,
		Clicks:      l.Clicks,
		CreatedAt:   l.CreatedAt,
	}
}

func (h *LinkHandler) newLinkResponses(links []*entity.Link) []*linkResponse {
	out := make([]*linkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, h.newLinkResponse(l))
	}

	return out
}

// CreateLink handles registering a new short link for the caller.
func (h *LinkHandler) CreateLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.uc.CreateLink(c.Request().Context(), &usecase.CreateLinkInput{
		UserID:      userID,
		CampaignID:  req.CampaignID,
		OriginalURL: req.OriginalURL,
		ShortCode:   req.ShortCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.newLinkResponse(link), "Link created successfully")
}

// Resolve handles looking up a short code. The click is recorded and a
// click event published before the link is returned.
func (h *LinkHandler) Resolve(c echo.Context) error {
	link, err := h.uc.ResolveShortCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.newLinkResponse(link), "Link resolved successfully")
}

// Redirect handles the public short URL: it records the click and sends the
// visitor to the original URL.
func (h *LinkHandler) Redirect(c echo.Context) error {
	link, err := h.uc.ResolveShortCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, link.OriginalURL)
}

// QRCode handles rendering the PNG QR code for a short link.
func (h *LinkHandler) QRCode(c echo.Context) error {
	png, err := h.uc.GenerateLinkQR(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListByUser handles listing every link owned by the given user.
func (h *LinkHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	links, err := h.uc.ListLinksByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.newLinkResponses(links), "Links retrieved successfully")
}

// DeleteLink handles removing a link the caller owns.
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid link ID")
	}

	if err := h.uc.DeleteLink(c.Request().Context(), linkID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Link deleted"}, "Link deleted successfully")
}
