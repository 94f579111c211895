package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"connect/config"
	"connect/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes link click events to a Google Cloud
// Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher backed by Google Cloud
// Pub/Sub. The topic must already exist.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("pubsub project id is required")
	}
	if cfg.TopicID == "" {
		return nil, fmt.Errorf("pubsub topic id is required")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pubsub topic %s not found: %w", topicName, err)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishLinkClickEvent(ctx context.Context, event *service.LinkClickEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal link click event: %w", err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"link_id":    event.LinkID.String(),
			"short_code": event.ShortCode,
			"request_id": event.RequestID,
		},
	})

	msgID, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("publish link click event: %w", err)
	}

	p.logger.Debug("published link click event",
		slog.String("message_id", msgID),
		slog.String("link_id", event.LinkID.String()),
		slog.String("short_code", event.ShortCode))

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()
	return p.client.Close()
}
