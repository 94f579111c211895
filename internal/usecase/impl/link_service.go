package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"connect/config"
	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shortCodeLength   = 8

	// Retries when a generated code collides with an existing one.
	shortCodeAttempts = 5
)

// linkService implements the LinkUsecase interface.
type linkService struct {
	linkRepo     repository.LinkRepository
	campaignRepo repository.CampaignRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	shortBaseURL string
	logger       *slog.Logger
}

// LinkServiceParams holds dependencies for linkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	LinkRepo     repository.LinkRepository
	CampaignRepo repository.CampaignRepository
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	shortBaseURL := ""
	if params.Config != nil && params.Config.Links != nil {
		shortBaseURL = strings.TrimRight(params.Config.Links.ShortBaseURL, "/")
	}

	return &linkService{
		linkRepo:     params.LinkRepo,
		campaignRepo: params.CampaignRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		shortBaseURL: shortBaseURL,
		logger:       params.Logger,
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLink registers a new short link for the user.
func (srv *linkService) CreateLink(ctx context.Context, input *usecase.CreateLinkInput) (*entity.Link, error) {
	srv.log(ctx).Info("Creating link", slog.Any("userID", input.UserID))

	if input.CampaignID != nil {
		campaign, err := srv.campaignRepo.FindCampaignByID(ctx, *input.CampaignID)
		if err != nil {
			if errors.Is(err, repository.ErrCampaignNotFound) {
				return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "link creation rejected")
			}

			return nil, errors.Wrap(err, "failed to find campaign")
		}
		if campaign.UserID != input.UserID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "campaign does not belong to user")
		}
	}

	// A caller-chosen code gets one shot; generated codes retry on collision.
	if input.ShortCode != "" {
		link, err := srv.insertLink(ctx, input, input.ShortCode)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateShortCode) {
				return nil, errors.Wrap(domainerrors.ErrShortCodeExists, "link creation rejected")
			}

			return nil, err
		}

		return link, nil
	}

	for attempt := 0; attempt < shortCodeAttempts; attempt++ {
		code, err := generateShortCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate short code")
		}

		link, err := srv.insertLink(ctx, input, code)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateShortCode) {
				continue
			}

			return nil, err
		}

		return link, nil
	}

	return nil, errors.Wrap(domainerrors.ErrInternalError, "exhausted short code generation attempts")
}

func (srv *linkService) insertLink(ctx context.Context, input *usecase.CreateLinkInput, code string) (*entity.Link, error) {
	link := &entity.Link{
		UserID:      input.UserID,
		CampaignID:  input.CampaignID,
		OriginalURL: input.OriginalURL,
		ShortCode:   code,
	}

	if err := srv.linkRepo.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateShortCode) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create link")
	}

	return link, nil
}

// generateShortCode draws a random code from the base62 alphabet.
func generateShortCode() (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(shortCodeAlphabet)))

	for i := 0; i < shortCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(shortCodeAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// GetLink retrieves a link by ID.
func (srv *linkService) GetLink(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	link, err := srv.linkRepo.FindLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "link lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}

	return link, nil
}

// ResolveShortCode looks up a link by its short code, records the click, and
// publishes a click event for asynchronous analytics.
func (srv *linkService) ResolveShortCode(ctx context.Context, shortCode string) (*entity.Link, error) {
	link, err := srv.linkRepo.FindLinkByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "short code lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find link by short code")
	}

	if err := srv.linkRepo.IncrementClicks(ctx, link.ID); err != nil {
		srv.log(ctx).Error("Failed to record click", slog.Any("error", err), slog.Any("linkID", link.ID))

		return nil, errors.Wrap(err, "failed to record click")
	}
	link.Clicks++

	// Publishing is best effort: analytics loss never blocks the redirect.
	event := &service.LinkClickEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		LinkID:     link.ID,
		ShortCode:  link.ShortCode,
		CampaignID: link.CampaignID,
		OwnerID:    link.UserID,
		ClickedAt:  time.Now().UTC(),
	}
	if err := srv.publisher.PublishLinkClickEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish link click event", slog.Any("error", err), slog.Any("linkID", link.ID))
	}

	return link, nil
}

// ListLinksByUser retrieves all links owned by the user, newest first.
func (srv *linkService) ListLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	links, err := srv.linkRepo.FindLinksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	return links, nil
}

// DeleteLink removes a link owned by the user.
func (srv *linkService) DeleteLink(ctx context.Context, linkID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting link", slog.Any("linkID", linkID), slog.Any("userID", userID))

	link, err := srv.GetLink(ctx, linkID)
	if err != nil {
		return err
	}

	if link.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "link does not belong to user")
	}

	if err := srv.linkRepo.DeleteLink(ctx, linkID); err != nil {
		return errors.Wrap(err, "failed to delete link")
	}

	return nil
}

// GenerateLinkQR renders a PNG QR code resolving the link's public short URL.
func (srv *linkService) GenerateLinkQR(ctx context.Context, shortCode string) ([]byte, error) {
	if _, err := srv.linkRepo.FindLinkByShortCode(ctx, shortCode); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "short code lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find link by short code")
	}

	png, err := srv.qrService.GenerateLinkQR(srv.shortBaseURL + "/" + shortCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
