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

// groupRepository implements the domain.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroup persists a new group with its initial members.
func (repo *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindGroupByID retrieves a group by its unique ID, including member IDs.
func (repo *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel
	err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&groupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&groupM), nil
}

// FindGroupsByUser retrieves all groups the user belongs to.
func (repo *groupRepository) FindGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	var groupModels []model.GroupModel
	err := repo.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at DESC").
		Find(&groupModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups for user")
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for i := range groupModels {
		groups = append(groups, toGroupDomain(&groupModels[i]))
	}

	return groups, nil
}

// UpdateGroup updates an existing group record. Membership is managed through
// AddMember/RemoveMember, not through this method.
func (repo *groupRepository) UpdateGroup(ctx context.Context, group *entity.Group) error {
	err := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", group.ID).
		Update("name", group.Name).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update group")
	}

	return nil
}

// DeleteGroup removes a group and its memberships.
func (repo *groupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("group_id = ?", id).
		Delete(&model.GroupMemberModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete group members")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GroupModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// AddMember links a user to a group.
func (repo *groupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	memberM := model.GroupMemberModel{GroupID: groupID, UserID: userID}

	if err := repo.db.WithContext(ctx).Create(&memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGroupMember
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	return nil
}

// RemoveMember unlinks a user from a group. Removing a non-member is a no-op.
func (repo *groupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMemberModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove group member")
	}

	return nil
}

// --- Mapper Functions ---

func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	memberIDs := make([]uuid.UUID, 0, len(data.Members))
	for _, member := range data.Members {
		memberIDs = append(memberIDs, member.UserID)
	}

	return &entity.Group{
		ID:        data.ID,
		Name:      data.Name,
		MemberIDs: memberIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	members := make([]model.GroupMemberModel, 0, len(data.MemberIDs))
	for _, userID := range data.MemberIDs {
		members = append(members, model.GroupMemberModel{UserID: userID})
	}

	return &model.GroupModel{
		ID:      data.ID,
		Name:    data.Name,
		Members: members,
	}
}
