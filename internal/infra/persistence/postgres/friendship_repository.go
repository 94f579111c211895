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

// friendshipRepository implements the domain.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

// CreateFriendship persists a new pending friend request edge.
func (repo *friendshipRepository) CreateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	edgeM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Create(edgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	friendship.ID = edgeM.ID
	friendship.CreatedAt = edgeM.CreatedAt
	friendship.UpdatedAt = edgeM.UpdatedAt

	return nil
}

// FindBetween retrieves the edge connecting two users in either direction.
func (repo *friendshipRepository) FindBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Friendship, error) {
	var edgeM model.FriendshipModel
	err := repo.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&edgeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship")
	}

	return toFriendshipDomain(&edgeM), nil
}

// UpdateFriendship updates an existing edge, typically to flip its status.
func (repo *friendshipRepository) UpdateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	edgeM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Save(edgeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update friendship")
	}

	friendship.UpdatedAt = edgeM.UpdatedAt

	return nil
}

// DeleteFriendship removes the edge connecting two users in either direction.
func (repo *friendshipRepository) DeleteFriendship(ctx context.Context, userA, userB uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friendship")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// FindAcceptedByUser retrieves all accepted edges touching the user.
func (repo *friendshipRepository) FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return repo.findEdges(ctx,
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		userID, userID, string(entity.FriendshipAccepted))
}

// FindPendingReceived retrieves pending requests addressed to the user.
func (repo *friendshipRepository) FindPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return repo.findEdges(ctx,
		"addressee_id = ? AND status = ?",
		userID, string(entity.FriendshipPending))
}

// FindPendingSent retrieves pending requests the user has sent.
func (repo *friendshipRepository) FindPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return repo.findEdges(ctx,
		"requester_id = ? AND status = ?",
		userID, string(entity.FriendshipPending))
}

func (repo *friendshipRepository) findEdges(ctx context.Context, query string, args ...any) ([]*entity.Friendship, error) {
	var edgeModels []model.FriendshipModel
	err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&edgeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friendships")
	}

	edges := make([]*entity.Friendship, 0, len(edgeModels))
	for i := range edgeModels {
		edges = append(edges, toFriendshipDomain(&edgeModels[i]))
	}

	return edges, nil
}

// --- Mapper Functions ---

func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		AddresseeID: data.AddresseeID,
		Status:      entity.FriendshipStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipModel{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		AddresseeID: data.AddresseeID,
		Status:      string(data.Status),
	}
}
