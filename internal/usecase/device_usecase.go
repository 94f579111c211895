package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a device for push
// notifications.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for device registration operations.
type DeviceUsecase interface {
	// RegisterDevice registers a device, or refreshes its FCM token when the
	// device is already known.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// ListDevices retrieves the user's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice unregisters a device owned by the user.
	RemoveDevice(ctx context.Context, deviceID, userID uuid.UUID) error
}
