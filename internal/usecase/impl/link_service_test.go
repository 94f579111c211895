package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"connect/config"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type linkServiceFixtures struct {
	service      usecase.LinkUsecase
	linkRepo     *mockRepo.MockLinkRepository
	campaignRepo *mockRepo.MockCampaignRepository
	publisher    *mockSvc.MockEventPublisher
	qrService    *mockSvc.MockQRCodeService
}

func createTestLinkService(t *testing.T) linkServiceFixtures {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLinkService(LinkServiceParams{
		LinkRepo:     linkRepo,
		CampaignRepo: campaignRepo,
		Publisher:    publisher,
		QRService:    qrService,
		Config: &config.Config{
			Links: &config.LinksConfig{ShortBaseURL: "http://localhost:8080/l/"},
		},
		Logger: logger,
	})

	return linkServiceFixtures{
		service:      service,
		linkRepo:     linkRepo,
		campaignRepo: campaignRepo,
		publisher:    publisher,
		qrService:    qrService,
	}
}

func TestLinkService_CreateLink_WithChosenCode(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	input := &usecase.CreateLinkInput{
		UserID:      uuid.New(),
		OriginalURL: "https://example.com/article",
		ShortCode:   "my-promo",
	}

	fx.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Run(func(ctx context.Context, link *entity.Link) {
			link.ID = uuid.New()
		}).
		Return(nil)

	link, err := fx.service.CreateLink(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "my-promo", link.ShortCode)
	assert.Equal(t, input.OriginalURL, link.OriginalURL)
}

func TestLinkService_CreateLink_ChosenCodeTaken(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	input := &usecase.CreateLinkInput{
		UserID:      uuid.New(),
		OriginalURL: "https://example.com/article",
		ShortCode:   "my-promo",
	}

	// A caller-chosen code is not retried.
	fx.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Return(repository.ErrDuplicateShortCode).
		Once()

	link, err := fx.service.CreateLink(ctx, input)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrShortCodeExists))
}

func TestLinkService_CreateLink_GeneratedCodeRetriesOnCollision(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	input := &usecase.CreateLinkInput{
		UserID:      uuid.New(),
		OriginalURL: "https://example.com/article",
	}

	codes := make([]string, 0, 2)

	fx.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Run(func(ctx context.Context, link *entity.Link) {
			codes = append(codes, link.ShortCode)
		}).
		Return(repository.ErrDuplicateShortCode).
		Once()
	fx.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Run(func(ctx context.Context, link *entity.Link) {
			codes = append(codes, link.ShortCode)
			link.ID = uuid.New()
		}).
		Return(nil).
		Once()

	link, err := fx.service.CreateLink(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, link)
	require.Len(t, codes, 2)
	assert.Len(t, codes[0], 8)
	assert.Len(t, codes[1], 8)
	assert.NotEqual(t, codes[0], codes[1])
	assert.Equal(t, codes[1], link.ShortCode)
}

func TestLinkService_CreateLink_CampaignOwnedByAnotherUser(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	input := &usecase.CreateLinkInput{
		UserID:      uuid.New(),
		CampaignID:  &campaignID,
		OriginalURL: "https://example.com/article",
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(&entity.Campaign{ID: campaignID, UserID: uuid.New()}, nil)

	link, err := fx.service.CreateLink(ctx, input)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLinkService_CreateLink_CampaignMissing(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	input := &usecase.CreateLinkInput{
		UserID:      uuid.New(),
		CampaignID:  &campaignID,
		OriginalURL: "https://example.com/article",
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(nil, repository.ErrCampaignNotFound)

	link, err := fx.service.CreateLink(ctx, input)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotFound))
}

func TestLinkService_ResolveShortCode_Success(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	link := &entity.Link{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		OriginalURL: "https://example.com/article",
		ShortCode:   "abc123XY",
		Clicks:      41,
	}

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, link.ShortCode).Return(link, nil)
	fx.linkRepo.EXPECT().IncrementClicks(ctx, link.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishLinkClickEvent(ctx, mock.AnythingOfType("*service.LinkClickEvent")).
		Run(func(ctx context.Context, event *service.LinkClickEvent) {
			assert.Equal(t, link.ID, event.LinkID)
			assert.Equal(t, link.ShortCode, event.ShortCode)
			assert.Equal(t, link.UserID, event.OwnerID)
			assert.False(t, event.ClickedAt.IsZero())
		}).
		Return(nil)

	got, err := fx.service.ResolveShortCode(ctx, link.ShortCode)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, link.OriginalURL, got.OriginalURL)
	assert.Equal(t, int64(42), got.Clicks)
}

func TestLinkService_ResolveShortCode_PublishFailureDoesNotBlock(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	link := &entity.Link{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		OriginalURL: "https://example.com/article",
		ShortCode:   "abc123XY",
	}

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, link.ShortCode).Return(link, nil)
	fx.linkRepo.EXPECT().IncrementClicks(ctx, link.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishLinkClickEvent(ctx, mock.AnythingOfType("*service.LinkClickEvent")).
		Return(errors.New("broker unavailable"))

	got, err := fx.service.ResolveShortCode(ctx, link.ShortCode)

	require.NoError(t, err)
	assert.Equal(t, link.OriginalURL, got.OriginalURL)
}

func TestLinkService_ResolveShortCode_NotFound(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, "missing1").Return(nil, repository.ErrLinkNotFound)

	got, err := fx.service.ResolveShortCode(ctx, "missing1")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrLinkNotFound))
}

func TestLinkService_ResolveShortCode_ClickRecordingFailureFailsResolve(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	link := &entity.Link{ID: uuid.New(), ShortCode: "abc123XY"}

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, link.ShortCode).Return(link, nil)
	fx.linkRepo.EXPECT().IncrementClicks(ctx, link.ID).Return(errors.New("db down"))

	got, err := fx.service.ResolveShortCode(ctx, link.ShortCode)

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestLinkService_DeleteLink_NotOwner(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	link := &entity.Link{ID: uuid.New(), UserID: uuid.New()}

	fx.linkRepo.EXPECT().FindLinkByID(ctx, link.ID).Return(link, nil)

	err := fx.service.DeleteLink(ctx, link.ID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLinkService_GenerateLinkQR_Success(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()
	link := &entity.Link{ID: uuid.New(), ShortCode: "abc123XY"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, link.ShortCode).Return(link, nil)
	fx.qrService.EXPECT().GenerateLinkQR("http://localhost:8080/l/abc123XY").Return(png, nil)

	got, err := fx.service.GenerateLinkQR(ctx, link.ShortCode)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestLinkService_GenerateLinkQR_UnknownCode(t *testing.T) {
	fx := createTestLinkService(t)

	ctx := context.Background()

	fx.linkRepo.EXPECT().FindLinkByShortCode(ctx, "missing1").Return(nil, repository.ErrLinkNotFound)

	got, err := fx.service.GenerateLinkQR(ctx, "missing1")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrLinkNotFound))
}
