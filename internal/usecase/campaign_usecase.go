package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput defines the data required to create a campaign.
type CreateCampaignInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
}

// UpdateCampaignInput defines the mutable campaign fields.
type UpdateCampaignInput struct {
	Name        *string
	Description *string
}

// CampaignUsecase defines the interface for campaign operations.
type CampaignUsecase interface {
	// CreateCampaign registers a new campaign for the user.
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error)

	// GetCampaign retrieves a campaign by ID together with its links.
	GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, []*entity.Link, error)

	// ListCampaignsByUser retrieves all campaigns owned by the user, newest first.
	ListCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)

	// UpdateCampaign applies the given changes to a campaign the user owns.
	UpdateCampaign(ctx context.Context, campaignID, userID uuid.UUID, input *UpdateCampaignInput) (*entity.Campaign, error)

	// DeleteCampaign removes a campaign the user owns. Its links remain,
	// detached from the campaign.
	DeleteCampaign(ctx context.Context, campaignID, userID uuid.UUID) error
}
