package impl

import (
	"context"
	"log/slog"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	campaignRepo repository.CampaignRepository
	linkRepo     repository.LinkRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for campaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	LinkRepo     repository.LinkRepository
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo: params.CampaignRepo,
		linkRepo:     params.LinkRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCampaign registers a new campaign for the user.
func (srv *campaignService) CreateCampaign(ctx context.Context, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	srv.log(ctx).Info("Creating campaign", slog.Any("userID", input.UserID), slog.String("name", input.Name))

	campaign := &entity.Campaign{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create campaign", slog.Any("error", err), slog.Any("userID", input.UserID))

		return nil, errors.Wrap(err, "failed to create campaign")
	}

	return campaign, nil
}

// GetCampaign retrieves a campaign by ID together with its links.
func (srv *campaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, []*entity.Link, error) {
	campaign, err := srv.loadCampaign(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	links, err := srv.linkRepo.FindLinksByCampaign(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list campaign links")
	}

	return campaign, links, nil
}

// ListCampaignsByUser retrieves all campaigns owned by the user, newest first.
func (srv *campaignService) ListCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	campaigns, err := srv.campaignRepo.FindCampaignsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

// UpdateCampaign applies the given changes to a campaign the user owns.
func (srv *campaignService) UpdateCampaign(ctx context.Context, campaignID, userID uuid.UUID, input *usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := srv.loadOwnedCampaign(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}

	if err := srv.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to update campaign")
	}

	return campaign, nil
}

// DeleteCampaign removes a campaign the user owns. Its links remain, detached
// from the campaign.
func (srv *campaignService) DeleteCampaign(ctx context.Context, campaignID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting campaign", slog.Any("campaignID", campaignID), slog.Any("userID", userID))

	if _, err := srv.loadOwnedCampaign(ctx, campaignID, userID); err != nil {
		return err
	}

	if err := srv.campaignRepo.DeleteCampaign(ctx, campaignID); err != nil {
		return errors.Wrap(err, "failed to delete campaign")
	}

	return nil
}

func (srv *campaignService) loadCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	return campaign, nil
}

func (srv *campaignService) loadOwnedCampaign(ctx context.Context, campaignID, userID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "campaign does not belong to user")
	}

	return campaign, nil
}
