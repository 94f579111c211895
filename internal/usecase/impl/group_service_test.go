package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	mockRepo "connect/internal/mocks/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceFixtures struct {
	service   usecase.GroupUsecase
	txManager *mockRepo.MockTransactionManager
	groupRepo *mockRepo.MockGroupRepository
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewGroupService(GroupServiceParams{
		TxManager: txManager,
		GroupRepo: groupRepo,
		Logger:    logger,
	})

	return groupServiceFixtures{
		service:   service,
		txManager: txManager,
		groupRepo: groupRepo,
	}
}

func TestGroupService_CreateGroup_Success(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	input := &usecase.CreateGroupInput{Name: "Study Group", CreatorID: creatorID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txGroupRepo := mockRepo.NewMockGroupRepository(t)

			mockFactory.EXPECT().NewGroupRepository().Return(txGroupRepo)

			txGroupRepo.EXPECT().
				CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).
				Run(func(ctx context.Context, group *entity.Group) {
					group.ID = uuid.New()
				}).
				Return(nil)
			txGroupRepo.EXPECT().
				AddMember(ctx, mock.AnythingOfType("uuid.UUID"), creatorID).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	group, err := fx.service.CreateGroup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "Study Group", group.Name)
	assert.Equal(t, []uuid.UUID{creatorID}, group.MemberIDs)
}

func TestGroupService_CreateGroup_TransactionRollsBack(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	input := &usecase.CreateGroupInput{Name: "Study Group", CreatorID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("tx aborted"))

	group, err := fx.service.CreateGroup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, group)
}

func TestGroupService_GetGroup_Success(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()
	want := &entity.Group{ID: groupID, Name: "Study Group"}

	fx.groupRepo.EXPECT().FindGroupByID(ctx, groupID).Return(want, nil)

	got, err := fx.service.GetGroup(ctx, groupID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGroupService_GetGroup_NotFound(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()

	fx.groupRepo.EXPECT().FindGroupByID(ctx, groupID).Return(nil, repository.ErrGroupNotFound)

	got, err := fx.service.GetGroup(ctx, groupID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrGroupNotFound))
}

func TestGroupService_JoinGroup_Success(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()
	userID := uuid.New()

	fx.groupRepo.EXPECT().AddMember(ctx, groupID, userID).Return(nil)

	require.NoError(t, fx.service.JoinGroup(ctx, groupID, userID))
}

func TestGroupService_JoinGroup_AlreadyMember(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()
	userID := uuid.New()

	fx.groupRepo.EXPECT().AddMember(ctx, groupID, userID).Return(repository.ErrDuplicateGroupMember)

	err := fx.service.JoinGroup(ctx, groupID, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGroupMemberExists))
}

func TestGroupService_JoinGroup_GroupMissing(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()
	userID := uuid.New()

	fx.groupRepo.EXPECT().AddMember(ctx, groupID, userID).Return(repository.ErrGroupNotFound)

	err := fx.service.JoinGroup(ctx, groupID, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGroupNotFound))
}

func TestGroupService_LeaveGroup_NonMemberIsNoOp(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()
	userID := uuid.New()

	fx.groupRepo.EXPECT().RemoveMember(ctx, groupID, userID).Return(nil)

	require.NoError(t, fx.service.LeaveGroup(ctx, groupID, userID))
}

func TestGroupService_DeleteGroup_NotFound(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	groupID := uuid.New()

	fx.groupRepo.EXPECT().DeleteGroup(ctx, groupID).Return(repository.ErrGroupNotFound)

	err := fx.service.DeleteGroup(ctx, groupID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGroupNotFound))
}
