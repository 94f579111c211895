// The clickworker binary runs the Pub/Sub push subscriber that turns link
// click events into owner notifications. It is deployed separately from the
// API server so click bursts never contend with request traffic.
package main

import (
	"context"
	"log/slog"
	"os"

	"connect/config"
	"connect/internal/delivery"
	"connect/internal/delivery/worker"
	"connect/internal/delivery/worker/handler"
	"connect/internal/domain/service"
	logs "connect/internal/infra/log"
	"connect/internal/infra/notification"
	"connect/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewLinkRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService creates the Firebase push client. The worker
// exists to push notifications, so unlike the API server the credentials
// are mandatory here.
func newNotificationService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, errors.New("firebase credentials are required for the click worker")
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClickHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
