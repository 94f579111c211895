// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for link and campaign persistence.
var (
	// ErrLinkNotFound is returned when a link is not found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrDuplicateShortCode is returned when the short code uniqueness constraint is violated.
	ErrDuplicateShortCode = errors.New("short code already exists")
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// LinkRepository defines the interface for short-link database operations.
type LinkRepository interface {
	// CreateLink persists a new short link.
	// Short code uniqueness is enforced at the storage level; a duplicate code
	// surfaces as ErrDuplicateShortCode.
	CreateLink(ctx context.Context, link *entity.Link) error

	// FindLinkByID retrieves a link by its unique ID.
	FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// FindLinkByShortCode retrieves a link by its short code.
	FindLinkByShortCode(ctx context.Context, shortCode string) (*entity.Link, error)

	// FindLinksByUser retrieves all links owned by the user, newest first.
	FindLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error)

	// FindLinksByCampaign retrieves all links grouped under the campaign, newest first.
	FindLinksByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Link, error)

	// IncrementClicks atomically bumps the click counter of a link.
	IncrementClicks(ctx context.Context, id uuid.UUID) error

	// DeleteLink removes a link by its ID.
	DeleteLink(ctx context.Context, id uuid.UUID) error
}

// CampaignRepository defines the interface for campaign database operations.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a campaign by its unique ID.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindCampaignsByUser retrieves all campaigns owned by the user, newest first.
	FindCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)

	// UpdateCampaign updates an existing campaign record.
	UpdateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// DeleteCampaign removes a campaign by its ID. Links remain, detached from
	// the deleted campaign.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}
