package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connect/config"
	"connect/internal/domain/service"
)

// PubSubPushMessage mirrors the envelope Google Pub/Sub uses for push
// subscriptions, so a local subscriber endpoint can be tested against the
// same payload shape it would receive in production.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher delivers events to a local HTTP endpoint in the
// Pub/Sub push format. Intended for development and integration testing.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that POSTs events to the
// configured local endpoint.
func NewLocalHTTPPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, fmt.Errorf("local pubsub endpoint is required")
	}

	return &localHTTPPublisher{
		endpoint: cfg.LocalEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}, nil
}

func (p *localHTTPPublisher) PublishLinkClickEvent(ctx context.Context, event *service.LinkClickEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal link click event: %w", err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/link-click-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = map[string]string{
		"link_id":    event.LinkID.String(),
		"short_code": event.ShortCode,
		"request_id": event.RequestID,
	}
	pushMsg.Message.MessageID = event.LinkID.String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push link click event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push link click event: unexpected status %d", resp.StatusCode)
	}

	p.logger.Debug("published link click event to local endpoint",
		slog.String("link_id", event.LinkID.String()),
		slog.String("short_code", event.ShortCode))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
