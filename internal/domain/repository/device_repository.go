package repository

import (
	"context"
	"errors"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceControlNotFound is returned when a device has no control record.
	ErrDeviceControlNotFound = errors.New("device control not found")
)

// DeviceRepository defines the operations for device persistence.
type DeviceRepository interface {
	// ListDevices returns the user's devices ordered by created_at DESC.
	// On failure it returns an empty slice together with the error.
	ListDevices(ctx context.Context, userID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error)

	// FindDeviceByID retrieves a device by its unique ID regardless of owner.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	CreateDevice(ctx context.Context, device *entity.Device) error
	UpdateDevice(ctx context.Context, device *entity.Device) error
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

// DeviceControlRepository persists the 1:1 control record of a device.
type DeviceControlRepository interface {
	FindByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceControl, error)
	Create(ctx context.Context, control *entity.DeviceControl) error
	Update(ctx context.Context, control *entity.DeviceControl) error
}
