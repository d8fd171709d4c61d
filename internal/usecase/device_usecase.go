package usecase

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeviceInput is the data needed to register a device. PowerRating
// arrives as text from forms and is parsed to watts.
type CreateDeviceInput struct {
	Name            string
	Type            entity.DeviceType
	Brand           string
	Model           string
	PowerRating     string
	Status          entity.DeviceStatus
	Location        string
	EfficiencyScore *int
}

// UpdateDeviceInput is a patch; nil fields are left unchanged.
type UpdateDeviceInput struct {
	Name               *string
	Type               *entity.DeviceType
	Brand              *string
	Model              *string
	PowerRating        *string
	Status             *entity.DeviceStatus
	Location           *string
	EfficiencyScore    *int
	CurrentConsumption *float64
}

// UpdateDeviceControlInput changes the runtime state of a device.
type UpdateDeviceControlInput struct {
	State      *entity.ControlState
	PowerLevel *int
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	ListDevices(ctx context.Context, userID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error)
	GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)
	CreateDevice(ctx context.Context, userID uuid.UUID, input *CreateDeviceInput) (*entity.Device, error)
	UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input *UpdateDeviceInput) (*entity.Device, error)
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	GetDeviceControl(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceControl, error)
	// UpdateDeviceControl persists the new state and sends it to the device.
	UpdateDeviceControl(ctx context.Context, userID, deviceID uuid.UUID, input *UpdateDeviceControlInput) (*entity.DeviceControl, error)
}
