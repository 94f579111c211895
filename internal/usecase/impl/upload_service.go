package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "connect/internal/delivery/context"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxUploadBytes caps accepted image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage  service.ObjectStorage
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage  service.ObjectStorage
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storage:  params.Storage,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadProfilePhoto stores the image, sets it as the user's photo, and
// returns its public URL.
func (srv *uploadService) UploadProfilePhoto(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	url, err := srv.storeImage(ctx, "avatars", input)
	if err != nil {
		return "", err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "upload rejected")
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	user.PhotoURL = url
	if user.PrimaryPhotoURL == "" {
		user.PrimaryPhotoURL = url
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to persist photo url")
	}

	return url, nil
}

// UploadPostImage stores the image for later attachment to a post and returns
// its public URL.
func (srv *uploadService) UploadPostImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	return srv.storeImage(ctx, "posts", input)
}

func (srv *uploadService) storeImage(ctx context.Context, prefix string, input *usecase.UploadImageInput) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return "", errors.Wrap(domainerrors.ErrUnsupportedFileType, "upload rejected")
	}

	if input.Size > maxUploadBytes {
		return "", errors.Wrap(domainerrors.ErrUploadTooLarge, "upload rejected")
	}

	// The stored key never derives from the client filename.
	key := path.Join(prefix, input.UserID.String(), fmt.Sprintf("%s%s", uuid.New().String(), ext))

	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to upload image", slog.Any("error", err), slog.String("key", key))

		return "", errors.Wrap(err, "failed to upload image")
	}

	srv.log(ctx).Info("Image uploaded", slog.Any("userID", input.UserID), slog.String("key", key))

	return url, nil
}
