package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	mockRepo "connect/internal/mocks/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campaignServiceFixtures struct {
	service      usecase.CampaignUsecase
	campaignRepo *mockRepo.MockCampaignRepository
	linkRepo     *mockRepo.MockLinkRepository
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCampaignService(CampaignServiceParams{
		CampaignRepo: campaignRepo,
		LinkRepo:     linkRepo,
		Logger:       logger,
	})

	return campaignServiceFixtures{
		service:      service,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
	}
}

func TestCampaignService_CreateCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateCampaignInput{
		UserID:      userID,
		Name:        "Launch Week",
		Description: "Links for the launch announcement",
	}

	fx.campaignRepo.EXPECT().
		CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			campaign.ID = uuid.New()
		}).
		Return(nil)

	campaign, err := fx.service.CreateCampaign(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, campaign)
	assert.Equal(t, userID, campaign.UserID)
	assert.Equal(t, "Launch Week", campaign.Name)
}

func TestCampaignService_GetCampaign_ReturnsLinks(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	want := &entity.Campaign{ID: campaignID, Name: "Launch Week"}
	wantLinks := []*entity.Link{{ID: uuid.New(), ShortCode: "launch01"}}

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(want, nil)
	fx.linkRepo.EXPECT().FindLinksByCampaign(ctx, campaignID).Return(wantLinks, nil)

	campaign, links, err := fx.service.GetCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, want, campaign)
	assert.Equal(t, wantLinks, links)
}

func TestCampaignService_GetCampaign_NotFound(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

	campaign, links, err := fx.service.GetCampaign(ctx, campaignID)

	require.Error(t, err)
	assert.Nil(t, campaign)
	assert.Nil(t, links)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotFound))
}

func TestCampaignService_UpdateCampaign_NotOwner(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	name := "Renamed"
	existing := &entity.Campaign{ID: campaignID, UserID: uuid.New()}

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(existing, nil)

	campaign, err := fx.service.UpdateCampaign(ctx, campaignID, uuid.New(), &usecase.UpdateCampaignInput{Name: &name})

	require.Error(t, err)
	assert.Nil(t, campaign)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCampaignService_UpdateCampaign_PartialUpdate(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	userID := uuid.New()
	description := "New description"
	existing := &entity.Campaign{
		ID:          campaignID,
		UserID:      userID,
		Name:        "Launch Week",
		Description: "Old description",
	}

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(existing, nil)
	fx.campaignRepo.EXPECT().
		UpdateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		Return(nil)

	campaign, err := fx.service.UpdateCampaign(ctx, campaignID, userID, &usecase.UpdateCampaignInput{Description: &description})

	require.NoError(t, err)
	assert.Equal(t, "Launch Week", campaign.Name)
	assert.Equal(t, "New description", campaign.Description)
}

func TestCampaignService_DeleteCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	userID := uuid.New()
	existing := &entity.Campaign{ID: campaignID, UserID: userID}

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(existing, nil)
	fx.campaignRepo.EXPECT().DeleteCampaign(ctx, campaignID).Return(nil)

	require.NoError(t, fx.service.DeleteCampaign(ctx, campaignID, userID))
}

func TestCampaignService_DeleteCampaign_NotOwner(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	existing := &entity.Campaign{ID: campaignID, UserID: uuid.New()}

	fx.campaignRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(existing, nil)

	err := fx.service.DeleteCampaign(ctx, campaignID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
