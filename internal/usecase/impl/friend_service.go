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

// friendService implements the FriendUsecase interface.
type friendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// FriendServiceParams holds dependencies for friendService, injected by Fx.
type FriendServiceParams struct {
	fx.In

	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewFriendService is the constructor for friendService.
func NewFriendService(params FriendServiceParams) usecase.FriendUsecase {
	return &friendService{
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

func (srv *friendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRequest creates a pending friend request from one user to another.
func (srv *friendService) SendRequest(ctx context.Context, fromID, toID uuid.UUID) (*entity.Friendship, error) {
	srv.log(ctx).Info("Sending friend request", slog.Any("fromID", fromID), slog.Any("toID", toID))

	if fromID == toID {
		return nil, errors.Wrap(domainerrors.ErrFriendRequestToSelf, "friend request rejected")
	}

	if _, err := srv.userRepo.FindByID(ctx, toID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "friend request rejected")
		}

		return nil, errors.Wrap(err, "failed to find addressee")
	}

	existing, err := srv.friendshipRepo.FindBetween(ctx, fromID, toID)
	if err != nil && !errors.Is(err, repository.ErrFriendshipNotFound) {
		return nil, errors.Wrap(err, "failed to check existing friendship")
	}
	if existing != nil {
		if existing.Status == entity.FriendshipAccepted {
			return nil, errors.Wrap(domainerrors.ErrAlreadyFriends, "friend request rejected")
		}

		return nil, errors.Wrap(domainerrors.ErrFriendRequestExists, "friend request rejected")
	}

	friendship := &entity.Friendship{
		RequesterID: fromID,
		AddresseeID: toID,
		Status:      entity.FriendshipPending,
	}

	if err := srv.friendshipRepo.CreateFriendship(ctx, friendship); err != nil {
		// A concurrent request between the same pair surfaces here.
		if errors.Is(err, repository.ErrDuplicateFriendship) {
			return nil, errors.Wrap(domainerrors.ErrFriendRequestExists, "friend request rejected")
		}

		return nil, errors.Wrap(err, "failed to create friend request")
	}

	return friendship, nil
}

// AcceptRequest accepts a pending request addressed to the user.
func (srv *friendService) AcceptRequest(ctx context.Context, userID, requesterID uuid.UUID) (*entity.Friendship, error) {
	srv.log(ctx).Info("Accepting friend request", slog.Any("userID", userID), slog.Any("requesterID", requesterID))

	friendship, err := srv.findPendingRequest(ctx, userID, requesterID)
	if err != nil {
		return nil, err
	}

	friendship.Status = entity.FriendshipAccepted
	if err := srv.friendshipRepo.UpdateFriendship(ctx, friendship); err != nil {
		return nil, errors.Wrap(err, "failed to accept friend request")
	}

	return friendship, nil
}

// DeclineRequest removes a pending request addressed to the user.
func (srv *friendService) DeclineRequest(ctx context.Context, userID, requesterID uuid.UUID) error {
	srv.log(ctx).Info("Declining friend request", slog.Any("userID", userID), slog.Any("requesterID", requesterID))

	if _, err := srv.findPendingRequest(ctx, userID, requesterID); err != nil {
		return err
	}

	if err := srv.friendshipRepo.DeleteFriendship(ctx, requesterID, userID); err != nil {
		return errors.Wrap(err, "failed to decline friend request")
	}

	return nil
}

// findPendingRequest loads the edge between requester and addressee and
// checks it is a pending request addressed to the given user.
func (srv *friendService) findPendingRequest(ctx context.Context, userID, requesterID uuid.UUID) (*entity.Friendship, error) {
	friendship, err := srv.friendshipRepo.FindBetween(ctx, requesterID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFriendRequestNotFound, "no pending request")
		}

		return nil, errors.Wrap(err, "failed to find friendship")
	}

	if friendship.Status != entity.FriendshipPending || friendship.AddresseeID != userID {
		return nil, errors.Wrap(domainerrors.ErrFriendRequestNotFound, "no pending request")
	}

	return friendship, nil
}

// RemoveFriend deletes an accepted friendship between two users.
func (srv *friendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	srv.log(ctx).Info("Removing friend", slog.Any("userID", userID), slog.Any("friendID", friendID))

	friendship, err := srv.friendshipRepo.FindBetween(ctx, userID, friendID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "no friendship to remove")
		}

		return errors.Wrap(err, "failed to find friendship")
	}

	if friendship.Status != entity.FriendshipAccepted {
		return errors.Wrap(domainerrors.ErrFriendRequestNotFound, "no friendship to remove")
	}

	if err := srv.friendshipRepo.DeleteFriendship(ctx, userID, friendID); err != nil {
		return errors.Wrap(err, "failed to remove friendship")
	}

	return nil
}

// ListFriends retrieves the user's accepted friends.
func (srv *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	edges, err := srv.friendshipRepo.FindAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friendships")
	}

	return srv.resolveCounterparts(ctx, userID, edges)
}

// ListPendingReceived retrieves users whose requests await the user's answer.
func (srv *friendService) ListPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	edges, err := srv.friendshipRepo.FindPendingReceived(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list received requests")
	}

	return srv.resolveCounterparts(ctx, userID, edges)
}

// ListPendingSent retrieves users the user has sent unanswered requests to.
func (srv *friendService) ListPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	edges, err := srv.friendshipRepo.FindPendingSent(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent requests")
	}

	return srv.resolveCounterparts(ctx, userID, edges)
}

// resolveCounterparts maps friendship edges to the user records on the far side.
func (srv *friendService) resolveCounterparts(ctx context.Context, userID uuid.UUID, edges []*entity.Friendship) ([]*entity.User, error) {
	if len(edges) == 0 {
		return []*entity.User{}, nil
	}

	ids := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.Other(userID))
	}

	users, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load friend records")
	}

	return users, nil
}
