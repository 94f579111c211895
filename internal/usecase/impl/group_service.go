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

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager repository.TransactionManager
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// GroupServiceParams holds dependencies for groupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager: params.TxManager,
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGroup creates a group with the creator as its first member. Group
// creation and the founding membership commit together or not at all.
func (srv *groupService) CreateGroup(ctx context.Context, input *usecase.CreateGroupInput) (*entity.Group, error) {
	srv.log(ctx).Info("Creating group", slog.String("name", input.Name), slog.Any("creatorID", input.CreatorID))

	group := &entity.Group{Name: input.Name}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.NewGroupRepository()

		if err := groupRepo.CreateGroup(ctx, group); err != nil {
			return errors.Wrap(err, "failed to create group")
		}

		if err := groupRepo.AddMember(ctx, group.ID, input.CreatorID); err != nil {
			return errors.Wrap(err, "failed to add creator to group")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute group creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute group creation transaction")
	}

	group.MemberIDs = []uuid.UUID{input.CreatorID}

	return group, nil
}

// GetGroup retrieves a group by ID, including its member IDs.
func (srv *groupService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := srv.groupRepo.FindGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGroupNotFound, "group lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	return group, nil
}

// ListGroupsByUser retrieves all groups the user belongs to.
func (srv *groupService) ListGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindGroupsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}

// JoinGroup adds the user to the group.
func (srv *groupService) JoinGroup(ctx context.Context, groupID, userID uuid.UUID) error {
	srv.log(ctx).Info("Joining group", slog.Any("groupID", groupID), slog.Any("userID", userID))

	if err := srv.groupRepo.AddMember(ctx, groupID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrGroupNotFound):
			return errors.Wrap(domainerrors.ErrGroupNotFound, "join rejected")
		case errors.Is(err, repository.ErrDuplicateGroupMember):
			return errors.Wrap(domainerrors.ErrGroupMemberExists, "join rejected")
		default:
			return errors.Wrap(err, "failed to add group member")
		}
	}

	return nil
}

// LeaveGroup removes the user from the group.
func (srv *groupService) LeaveGroup(ctx context.Context, groupID, userID uuid.UUID) error {
	srv.log(ctx).Info("Leaving group", slog.Any("groupID", groupID), slog.Any("userID", userID))

	if err := srv.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return errors.Wrap(err, "failed to remove group member")
	}

	return nil
}

// DeleteGroup removes a group and its memberships.
func (srv *groupService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting group", slog.Any("groupID", id))

	if err := srv.groupRepo.DeleteGroup(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return errors.Wrap(domainerrors.ErrGroupNotFound, "group deletion failed")
		}

		return errors.Wrap(err, "failed to delete group")
	}

	return nil
}
