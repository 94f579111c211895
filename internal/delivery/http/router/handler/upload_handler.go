package handler

import (
	"context"
	"log/slog"
	"net/http"

	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadFormField is the multipart field carrying the image.
const uploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler holds dependencies for image upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uc:     params.UploadUC,
		logger: params.Logger,
	}
}

// UploadAvatar handles uploading the caller's profile photo.
func (h *UploadHandler) UploadAvatar(c echo.Context) error {
	return h.upload(c, h.uc.UploadProfilePhoto, "Avatar uploaded successfully")
}

// UploadPostImage handles uploading an image for attachment to a post.
func (h *UploadHandler) UploadPostImage(c echo.Context) error {
	return h.upload(c, h.uc.UploadPostImage, "Image uploaded successfully")
}

func (h *UploadHandler) upload(
	c echo.Context,
	store func(ctx context.Context, input *usecase.UploadImageInput) (string, error),
	message string,
) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() { _ = src.Close() }()

	url, err := store(c.Request().Context(), &usecase.UploadImageInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, message)
}
