package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadServiceFixtures struct {
	service  usecase.UploadUsecase
	storage  *mockSvc.MockObjectStorage
	userRepo *mockRepo.MockUserRepository
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	storage := mockSvc.NewMockObjectStorage(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUploadService(UploadServiceParams{
		Storage:  storage,
		UserRepo: userRepo,
		Logger:   logger,
	})

	return uploadServiceFixtures{
		service:  service,
		storage:  storage,
		userRepo: userRepo,
	}
}

func TestUploadService_UploadProfilePhoto_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PrimaryPhotoURL: "https://cdn.example.com/old.jpg"}
	input := &usecase.UploadImageInput{
		UserID:      user.ID,
		Filename:    "../../etc/passwd.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("fake image bytes"),
	}

	var storedKey string

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", input.Body).
		Run(func(ctx context.Context, key string, contentType string, body io.Reader) {
			storedKey = key
		}).
		Return("https://cdn.example.com/new.jpg", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "https://cdn.example.com/new.jpg", updated.PhotoURL)
		}).
		Return(nil)

	url, err := fx.service.UploadProfilePhoto(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.jpg", url)

	// The key is derived from the owner and a fresh UUID, never from the
	// client-supplied filename.
	assert.True(t, strings.HasPrefix(storedKey, "avatars/"+user.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(storedKey, ".jpg"))
	assert.NotContains(t, storedKey, "passwd")

	// An existing primary photo is left untouched.
	assert.Equal(t, "https://cdn.example.com/old.jpg", user.PrimaryPhotoURL)
}

func TestUploadService_UploadProfilePhoto_SetsPrimaryWhenEmpty(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	input := &usecase.UploadImageInput{
		UserID:      user.ID,
		Filename:    "me.png",
		ContentType: "image/png",
		Size:        2048,
		Body:        strings.NewReader("fake image bytes"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", input.Body).
		Return("https://cdn.example.com/me.png", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "https://cdn.example.com/me.png", updated.PrimaryPhotoURL)
		}).
		Return(nil)

	_, err := fx.service.UploadProfilePhoto(ctx, input)

	require.NoError(t, err)
}

func TestUploadService_UploadPostImage_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UploadImageInput{
		UserID:      userID,
		Filename:    "party.webp",
		ContentType: "image/webp",
		Size:        4096,
		Body:        strings.NewReader("fake image bytes"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/webp", input.Body).
		Run(func(ctx context.Context, key string, contentType string, body io.Reader) {
			assert.True(t, strings.HasPrefix(key, "posts/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".webp"))
		}).
		Return("https://cdn.example.com/party.webp", nil)

	url, err := fx.service.UploadPostImage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/party.webp", url)
}

func TestUploadService_Upload_UnsupportedContentType(t *testing.T) {
	fx := createTestUploadService(t)

	input := &usecase.UploadImageInput{
		UserID:      uuid.New(),
		Filename:    "payload.svg",
		ContentType: "image/svg+xml",
		Size:        512,
		Body:        strings.NewReader("<svg/>"),
	}

	url, err := fx.service.UploadPostImage(context.Background(), input)

	require.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestUploadService_Upload_TooLarge(t *testing.T) {
	fx := createTestUploadService(t)

	input := &usecase.UploadImageInput{
		UserID:      uuid.New(),
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        maxUploadBytes + 1,
		Body:        strings.NewReader("fake image bytes"),
	}

	url, err := fx.service.UploadPostImage(context.Background(), input)

	require.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
}

func TestUploadService_Upload_ContentTypeIsCaseInsensitive(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	input := &usecase.UploadImageInput{
		UserID:      uuid.New(),
		Filename:    "photo.JPG",
		ContentType: "IMAGE/JPEG",
		Size:        1024,
		Body:        strings.NewReader("fake image bytes"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "IMAGE/JPEG", input.Body).
		Return("https://cdn.example.com/photo.jpg", nil)

	_, err := fx.service.UploadPostImage(ctx, input)

	require.NoError(t, err)
}
