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

// linkRepository implements the domain.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// CreateLink persists a new short link. The unique index on short_code is the
// authoritative uniqueness check.
func (repo *linkRepository) CreateLink(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShortCode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindLinkByID retrieves a link by its unique ID.
func (repo *linkRepository) FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by id")
	}

	return toLinkDomain(&linkM), nil
}

// FindLinkByShortCode retrieves a link by its short code.
func (repo *linkRepository) FindLinkByShortCode(ctx context.Context, shortCode string) (*entity.Link, error) {
	var linkM model.LinkModel
	err := repo.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by short code")
	}

	return toLinkDomain(&linkM), nil
}

// FindLinksByUser retrieves all links owned by the user, newest first.
func (repo *linkRepository) FindLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	var linkModels []model.LinkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&linkModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for i := range linkModels {
		links = append(links, toLinkDomain(&linkModels[i]))
	}

	return links, nil
}

// FindLinksByCampaign retrieves all links grouped under the campaign, newest first.
func (repo *linkRepository) FindLinksByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Link, error) {
	var linkModels []model.LinkModel
	err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&linkModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaign links")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for i := range linkModels {
		links = append(links, toLinkDomain(&linkModels[i]))
	}

	return links, nil
}

// IncrementClicks atomically bumps the click counter of a link.
func (repo *linkRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ?", id).
		Update("clicks", gorm.Expr("clicks + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment clicks")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// DeleteLink removes a link by its ID.
func (repo *linkRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LinkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLinkDomain(data *model.LinkModel) *entity.Link {
	if data == nil {
		return nil
	}

	return &entity.Link{
		ID:          data.ID,
		UserID:      data.UserID,
		CampaignID:  data.CampaignID,
		OriginalURL: data.OriginalURL,
		ShortCode:   data.ShortCode,
		Clicks:      data.Clicks,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLinkDomain(data *entity.Link) *model.LinkModel {
	if data == nil {
		return nil
	}

	return &model.LinkModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CampaignID:  data.CampaignID,
		OriginalURL: data.OriginalURL,
		ShortCode:   data.ShortCode,
		Clicks:      data.Clicks,
	}
}
