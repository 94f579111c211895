package impl

import (
	"context"
	"log/slog"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a device, or refreshes its FCM token when the
// device is already known.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	srv.log(ctx).Info("Registering device", slog.Any("userID", input.UserID), slog.String("platform", input.Platform))

	existing, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user devices")
	}

	for _, device := range existing {
		if device.DeviceID == input.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to refresh FCM token")
			}
			device.FCMToken = input.FCMToken

			return device, nil
		}
	}

	device := &entity.UserDevice{
		UserID:   input.UserID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// ListDevices retrieves the user's active devices.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user devices")
	}

	return devices, nil
}

// RemoveDevice unregisters a device owned by the user.
func (srv *deviceService) RemoveDevice(ctx context.Context, deviceID, userID uuid.UUID) error {
	srv.log(ctx).Info("Removing device", slog.Any("deviceID", deviceID), slog.Any("userID", userID))

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list user devices")
	}

	for _, device := range devices {
		if device.ID == deviceID {
			if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
				return errors.Wrap(err, "failed to delete device")
			}

			return nil
		}
	}

	return errors.Wrap(domainerrors.ErrNotFound, "device not found for user")
}
