// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the domain.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

// CreateCampaign persists a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaignByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return toCampaignDomain(&campaignM), nil
}

// FindCampaignsByUser retrieves all campaigns owned by the user, newest first.
func (repo *campaignRepository) FindCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&campaignModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for i := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(&campaignModels[i]))
	}

	return campaigns, nil
}

// UpdateCampaign updates an existing campaign record.
func (repo *campaignRepository) UpdateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Select("name", "description").
		Updates(&model.CampaignModel{Name: campaign.Name, Description: campaign.Description}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update campaign")
	}

	return nil
}

// DeleteCampaign removes a campaign by its ID, detaching its links first.
func (repo *campaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("campaign_id = ?", id).
		Update("campaign_id", nil).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach campaign links")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CampaignModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
	}
}
