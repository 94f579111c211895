// Package handler contains the Pub/Sub push endpoint of the click worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connect/config"
	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/constants"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ClickHandler consumes link click events pushed by the Pub/Sub
// subscription and notifies the link owner's devices.
type ClickHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
	linkRepo        repository.LinkRepository
}

// ClickHandlerParams holds dependencies for the ClickHandler
type ClickHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
	LinkRepo        repository.LinkRepository
}

// NewClickHandler creates a new Pub/Sub push handler for click events.
// Push authentication is only enforced for the google provider outside of
// development, matching how the subscription is provisioned.
func NewClickHandler(params ClickHandlerParams) *ClickHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env == "production"

	return &ClickHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
		linkRepo:        params.LinkRepo,
	}
}

// HandlePush handles an incoming Pub/Sub push request carrying one click event.
func (h *ClickHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.LinkClickEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse click event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing link click event",
		slog.String("link_id", event.LinkID.String()),
		slog.String("short_code", event.ShortCode),
		slog.String("owner_id", event.OwnerID.String()),
	)

	if err := h.processClick(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process click event",
			slog.String("link_id", event.LinkID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; anything non-retryable is
		// acked with 200 so it does not loop forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID finds the request_id for tracing, preferring the message
// attributes, then the event payload, then the incoming request context.
func (h *ClickHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.LinkClickEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processClick pushes a click notification to the link owner's active
// devices. A missing link or an owner without devices acks the event.
func (h *ClickHandler) processClick(ctx context.Context, event *service.LinkClickEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	link, err := h.linkRepo.FindLinkByID(ctx, event.LinkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			logger.Info("[Worker] Link gone, dropping click event",
				slog.String("link_id", event.LinkID.String()))

			return nil
		}

		return newRetryableError(err)
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, event.OwnerID)
	if err != nil {
		return newRetryableError(err)
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.FCMToken)
	}

	title := "Your link was clicked"
	body := fmt.Sprintf("%s now has %d clicks", link.ShortCode, link.Clicks)
	notificationData := map[string]string{
		"type":       "link_click",
		"linkId":     event.LinkID.String(),
		"shortCode":  event.ShortCode,
		"clickedAt":  event.ClickedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		"request_id": event.RequestID,
	}
	if event.CampaignID != nil {
		notificationData["campaignId"] = event.CampaignID.String()
	}

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, notificationData)
	if err != nil {
		return newRetryableError(err)
	}

	if len(invalidTokens) > 0 {
		if err := h.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
			logger.Warn("[Worker] Failed to deactivate stale tokens", slog.Any("error", err))
		}
	}

	logger.Info("[Worker] Click notification completed",
		slog.String("link_id", event.LinkID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
