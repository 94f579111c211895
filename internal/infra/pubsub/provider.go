// Package pubsub provides event publisher implementations for link click events.
package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"connect/config"
	"connect/internal/domain/constants"
	"connect/internal/domain/lifecycle"
	"connect/internal/domain/service"

	"go.uber.org/fx"
)

// PublisherParams holds the dependencies for creating an event publisher.
type PublisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an event publisher based on the configured provider.
// When pubsub is not configured, a no-op publisher is returned so the rest of
// the application does not need to care whether publishing is enabled.
func NewEventPublisher(lc fx.Lifecycle, params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("pubsub provider not configured, using noop publisher")
		return &noopPublisher{logger: params.Logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher, err = NewLocalHTTPPublisher(cfg, params.Logger)
	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(context.Background(), cfg, params.Logger)
	default:
		return nil, fmt.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create pubsub publisher: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			done := make(chan error, 1)
			go func() { done <- publisher.Close() }()
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return publisher, nil
}

// noopPublisher discards all events. Used when pubsub is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLinkClickEvent(_ context.Context, event *service.LinkClickEvent) error {
	p.logger.Debug("noop publisher: dropping link click event",
		slog.String("link_id", event.LinkID.String()),
		slog.String("short_code", event.ShortCode))
	return nil
}

func (p *noopPublisher) Close() error { return nil }
