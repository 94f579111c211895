package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadImageInput defines an incoming image upload.
type UploadImageInput struct {
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadUsecase defines the interface for image upload operations.
type UploadUsecase interface {
	// UploadProfilePhoto stores the image, sets it as the user's photo, and
	// returns its public URL.
	UploadProfilePhoto(ctx context.Context, input *UploadImageInput) (string, error)

	// UploadPostImage stores the image for later attachment to a post and
	// returns its public URL.
	UploadPostImage(ctx context.Context, input *UploadImageInput) (string, error)
}
