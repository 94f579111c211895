package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLinkInput defines the data required to create a short link. When
// ShortCode is empty a random code is generated.
type CreateLinkInput struct {
	UserID      uuid.UUID
	CampaignID  *uuid.UUID
	OriginalURL string
	ShortCode   string
}

// LinkUsecase defines the interface for short-link operations.
type LinkUsecase interface {
	// CreateLink registers a new short link for the user.
	CreateLink(ctx context.Context, input *CreateLinkInput) (*entity.Link, error)

	// GetLink retrieves a link by ID.
	GetLink(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// ResolveShortCode looks up a link by its short code, records the click,
	// and publishes a click event for asynchronous analytics.
	ResolveShortCode(ctx context.Context, shortCode string) (*entity.Link, error)

	// ListLinksByUser retrieves all links owned by the user, newest first.
	ListLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error)

	// DeleteLink removes a link owned by the user.
	DeleteLink(ctx context.Context, linkID, userID uuid.UUID) error

	// GenerateLinkQR renders a PNG QR code resolving the link's public short URL.
	GenerateLinkQR(ctx context.Context, shortCode string) ([]byte, error)
}
