package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LinkClickEvent represents a recorded short-link resolution, published for
// asynchronous analytics processing.
type LinkClickEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	LinkID     uuid.UUID  `json:"link_id"`
	ShortCode  string     `json:"short_code"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	ClickedAt  time.Time  `json:"clicked_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLinkClickEvent publishes a click event for async processing
	PublishLinkClickEvent(ctx context.Context, event *LinkClickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
