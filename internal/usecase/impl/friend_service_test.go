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

type friendServiceFixtures struct {
	service        usecase.FriendUsecase
	friendshipRepo *mockRepo.MockFriendshipRepository
	userRepo       *mockRepo.MockUserRepository
}

func createTestFriendService(t *testing.T) friendServiceFixtures {
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFriendService(FriendServiceParams{
		FriendshipRepo: friendshipRepo,
		UserRepo:       userRepo,
		Logger:         logger,
	})

	return friendServiceFixtures{
		service:        service,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

func TestFriendService_SendRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, toID).Return(&entity.User{ID: toID}, nil)
	fx.friendshipRepo.EXPECT().FindBetween(ctx, fromID, toID).Return(nil, repository.ErrFriendshipNotFound)
	fx.friendshipRepo.EXPECT().
		CreateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
		Return(nil)

	friendship, err := fx.service.SendRequest(ctx, fromID, toID)

	require.NoError(t, err)
	require.NotNil(t, friendship)
	assert.Equal(t, fromID, friendship.RequesterID)
	assert.Equal(t, toID, friendship.AddresseeID)
	assert.Equal(t, entity.FriendshipPending, friendship.Status)
}

func TestFriendService_SendRequest_ToSelf(t *testing.T) {
	fx := createTestFriendService(t)

	userID := uuid.New()

	friendship, err := fx.service.SendRequest(context.Background(), userID, userID)

	require.Error(t, err)
	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestToSelf))
}

func TestFriendService_SendRequest_AddresseeMissing(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, toID).Return(nil, repository.ErrUserNotFound)

	friendship, err := fx.service.SendRequest(ctx, fromID, toID)

	require.Error(t, err)
	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestFriendService_SendRequest_AlreadyFriends(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, toID).Return(&entity.User{ID: toID}, nil)
	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, fromID, toID).
		Return(&entity.Friendship{RequesterID: toID, AddresseeID: fromID, Status: entity.FriendshipAccepted}, nil)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFriends))
}

func TestFriendService_SendRequest_PendingExists(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, toID).Return(&entity.User{ID: toID}, nil)
	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, fromID, toID).
		Return(&entity.Friendship{RequesterID: fromID, AddresseeID: toID, Status: entity.FriendshipPending}, nil)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestExists))
}

func TestFriendService_SendRequest_ConcurrentDuplicate(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, toID).Return(&entity.User{ID: toID}, nil)
	fx.friendshipRepo.EXPECT().FindBetween(ctx, fromID, toID).Return(nil, repository.ErrFriendshipNotFound)
	fx.friendshipRepo.EXPECT().
		CreateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
		Return(repository.ErrDuplicateFriendship)

	_, err := fx.service.SendRequest(ctx, fromID, toID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestExists))
}

func TestFriendService_AcceptRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()
	pending := &entity.Friendship{
		RequesterID: requesterID,
		AddresseeID: userID,
		Status:      entity.FriendshipPending,
	}

	fx.friendshipRepo.EXPECT().FindBetween(ctx, requesterID, userID).Return(pending, nil)
	fx.friendshipRepo.EXPECT().
		UpdateFriendship(ctx, mock.AnythingOfType("*entity.Friendship")).
		Run(func(ctx context.Context, friendship *entity.Friendship) {
			assert.Equal(t, entity.FriendshipAccepted, friendship.Status)
		}).
		Return(nil)

	friendship, err := fx.service.AcceptRequest(ctx, userID, requesterID)

	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipAccepted, friendship.Status)
}

func TestFriendService_AcceptRequest_OnlyAddresseeMayAccept(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()

	// The edge exists but is addressed to the requester, not the caller.
	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, requesterID, userID).
		Return(&entity.Friendship{
			RequesterID: userID,
			AddresseeID: requesterID,
			Status:      entity.FriendshipPending,
		}, nil)

	friendship, err := fx.service.AcceptRequest(ctx, userID, requesterID)

	require.Error(t, err)
	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestNotFound))
}

func TestFriendService_DeclineRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, requesterID, userID).
		Return(&entity.Friendship{
			RequesterID: requesterID,
			AddresseeID: userID,
			Status:      entity.FriendshipPending,
		}, nil)
	fx.friendshipRepo.EXPECT().DeleteFriendship(ctx, requesterID, userID).Return(nil)

	require.NoError(t, fx.service.DeclineRequest(ctx, userID, requesterID))
}

func TestFriendService_DeclineRequest_NotFound(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, requesterID, userID).
		Return(nil, repository.ErrFriendshipNotFound)

	err := fx.service.DeclineRequest(ctx, userID, requesterID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestNotFound))
}

func TestFriendService_RemoveFriend_Success(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, userID, friendID).
		Return(&entity.Friendship{
			RequesterID: friendID,
			AddresseeID: userID,
			Status:      entity.FriendshipAccepted,
		}, nil)
	fx.friendshipRepo.EXPECT().DeleteFriendship(ctx, userID, friendID).Return(nil)

	require.NoError(t, fx.service.RemoveFriend(ctx, userID, friendID))
}

func TestFriendService_RemoveFriend_PendingEdgeIsNotAFriendship(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindBetween(ctx, userID, friendID).
		Return(&entity.Friendship{
			RequesterID: userID,
			AddresseeID: friendID,
			Status:      entity.FriendshipPending,
		}, nil)

	err := fx.service.RemoveFriend(ctx, userID, friendID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFriendRequestNotFound))
}

func TestFriendService_ListFriends_ResolvesCounterparts(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindAcceptedByUser(ctx, userID).
		Return([]*entity.Friendship{
			{RequesterID: userID, AddresseeID: friendA, Status: entity.FriendshipAccepted},
			{RequesterID: friendB, AddresseeID: userID, Status: entity.FriendshipAccepted},
		}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{friendA, friendB}).
		Return([]*entity.User{{ID: friendA}, {ID: friendB}}, nil)

	friends, err := fx.service.ListFriends(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, friends, 2)
}

func TestFriendService_ListFriends_Empty(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.friendshipRepo.EXPECT().FindAcceptedByUser(ctx, userID).Return(nil, nil)

	friends, err := fx.service.ListFriends(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendService_ListPendingReceived(t *testing.T) {
	fx := createTestFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	requesterID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindPendingReceived(ctx, userID).
		Return([]*entity.Friendship{
			{RequesterID: requesterID, AddresseeID: userID, Status: entity.FriendshipPending},
		}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{requesterID}).
		Return([]*entity.User{{ID: requesterID}}, nil)

	users, err := fx.service.ListPendingReceived(ctx, userID)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, requesterID, users[0].ID)
}
