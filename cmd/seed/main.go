// The seed binary loads a demo dataset into the configured database:
// a few users with hashed passwords, a friendship graph, a group, posts,
// and a campaign with tracked links. Running it against a database that
// already holds the demo users is a no-op.
package main

import (
	"context"
	"log/slog"
	"time"

	"connect/config"
	"connect/internal/domain/entity"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/infra/auth"
	logs "connect/internal/infra/log"
	"connect/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const demoPassword = "Password123"

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewFriendshipRepository,
			postgres.NewGroupRepository,
			postgres.NewPostRepository,
			postgres.NewLinkRepository,
			postgres.NewCampaignRepository,
			newPasswordHasher,
		),
		fx.Invoke(run),
	).Run()
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

type seedParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Hasher     service.PasswordHasher

	UserRepo       repository.UserRepository
	FriendshipRepo repository.FriendshipRepository
	GroupRepo      repository.GroupRepository
	PostRepo       repository.PostRepository
	LinkRepo       repository.LinkRepository
	CampaignRepo   repository.CampaignRepository
}

func run(lc fx.Lifecycle, params seedParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := seed(context.Background(), params); err != nil {
					params.Logger.Error("seeding failed", slog.Any("error", err))
				} else {
					params.Logger.Info("seeding completed")
				}
				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}

func seed(ctx context.Context, params seedParams) error {
	if existing, err := params.UserRepo.FindByEmail(ctx, "alice@example.com"); err == nil && existing != nil {
		params.Logger.Info("demo data already present, nothing to do")

		return nil
	}

	hash, err := params.Hasher.Hash(demoPassword)
	if err != nil {
		return errors.Wrap(err, "hash demo password")
	}

	users := []*entity.User{
		{ID: uuid.New(), Email: "alice@example.com", Name: "Alice Demo", Role: entity.RoleAdmin},
		{ID: uuid.New(), Email: "bob@example.com", Name: "Bob Demo", Role: entity.RoleUser},
		{ID: uuid.New(), Email: "carol@example.com", Name: "Carol Demo", Role: entity.RoleUser},
	}
	for _, u := range users {
		u.PasswordHash = hash
		u.JoinedAt = time.Now().UTC()
		if err := params.UserRepo.Create(ctx, u); err != nil {
			return errors.Wrapf(err, "create user %s", u.Email)
		}
	}
	alice, bob, carol := users[0], users[1], users[2]

	if err := params.FriendshipRepo.CreateFriendship(ctx, &entity.Friendship{
		ID:          uuid.New(),
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      entity.FriendshipAccepted,
	}); err != nil {
		return errors.Wrap(err, "create accepted friendship")
	}
	if err := params.FriendshipRepo.CreateFriendship(ctx, &entity.Friendship{
		ID:          uuid.New(),
		RequesterID: carol.ID,
		AddresseeID: alice.ID,
		Status:      entity.FriendshipPending,
	}); err != nil {
		return errors.Wrap(err, "create pending friendship")
	}

	group := &entity.Group{ID: uuid.New(), Name: "Campus Crew"}
	if err := params.GroupRepo.CreateGroup(ctx, group); err != nil {
		return errors.Wrap(err, "create group")
	}
	for _, u := range users {
		if err := params.GroupRepo.AddMember(ctx, group.ID, u.ID); err != nil {
			return errors.Wrapf(err, "add %s to group", u.Email)
		}
	}

	post := &entity.Post{
		ID:       uuid.New(),
		AuthorID: alice.ID,
		Caption:  "First day on the platform!",
	}
	if err := params.PostRepo.CreatePost(ctx, post); err != nil {
		return errors.Wrap(err, "create post")
	}
	if err := params.PostRepo.AddLike(ctx, post.ID, bob.ID); err != nil {
		return errors.Wrap(err, "like post")
	}
	if err := params.PostRepo.CreateComment(ctx, &entity.Comment{
		ID:       uuid.New(),
		PostID:   post.ID,
		AuthorID: carol.ID,
		Content:  "Welcome!",
	}); err != nil {
		return errors.Wrap(err, "create comment")
	}

	campaign := &entity.Campaign{
		ID:          uuid.New(),
		UserID:      alice.ID,
		Name:        "Launch Week",
		Description: "Demo campaign created by the seeder",
	}
	if err := params.CampaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return errors.Wrap(err, "create campaign")
	}

	links := []*entity.Link{
		{
			ID:          uuid.New(),
			UserID:      alice.ID,
			CampaignID:  &campaign.ID,
			OriginalURL: "https://example.com/launch",
			ShortCode:   "launch01",
		},
		{
			ID:          uuid.New(),
			UserID:      alice.ID,
			OriginalURL: "https://example.com/about",
			ShortCode:   "about001",
		},
	}
	for _, l := range links {
		if err := params.LinkRepo.CreateLink(ctx, l); err != nil {
			return errors.Wrapf(err, "create link %s", l.ShortCode)
		}
	}

	return nil
}
