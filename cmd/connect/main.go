package main

import (
	"context"
	"log/slog"
	"os"

	"connect/config"
	"connect/internal/delivery"
	"connect/internal/delivery/http"
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/router/handler"
	"connect/internal/domain/service"
	"connect/internal/infra/auth"
	logs "connect/internal/infra/log"
	"connect/internal/infra/notification"
	"connect/internal/infra/persistence/postgres"
	"connect/internal/infra/pubsub"
	"connect/internal/infra/qrcode"
	"connect/internal/infra/storage"
	"connect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewFriendshipRepository,
			postgres.NewGroupRepository,
			postgres.NewPostRepository,
			postgres.NewMessageRepository,
			postgres.NewLinkRepository,
			postgres.NewCampaignRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPasswordHasher,
			newPasswordPolicy,
			newNotificationService,
			newQRCodeService,
			pubsub.NewEventPublisher,
			storage.NewObjectStorage,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher from the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newPasswordPolicy builds the password policy from configuration,
// falling back to the defaults when the section is absent.
func newPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policyCfg := cfg.PasswordPolicy
	if policyCfg == nil {
		policyCfg = &config.PasswordPolicyConfig{MinLength: 8, RequireDigit: true}
	}

	return auth.NewPasswordPolicy(policyCfg)
}

// newNotificationService creates the Firebase push service when configured.
// Direct message push is optional; without Firebase the messaging flow
// simply skips notifications.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("firebase not configured, direct message push disabled")

		return nil, nil
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
}

// newQRCodeService creates a QR code service from the optional config section.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewFriendService,
			impl.NewGroupService,
			impl.NewPostService,
			impl.NewMessageService,
			impl.NewLinkService,
			impl.NewCampaignService,
			impl.NewUploadService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewFriendHandler,
			handler.NewGroupHandler,
			handler.NewPostHandler,
			handler.NewMessageHandler,
			handler.NewLinkHandler,
			handler.NewCampaignHandler,
			handler.NewUploadHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
