package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeviceCommand is a control state change sent to a physical device.
type DeviceCommand struct {
	DeviceID   uuid.UUID `json:"device_id"`
	State      string    `json:"state"`
	PowerLevel int       `json:"power_level"`
	IssuedAt   time.Time `json:"issued_at"`
}

// DeviceCommander delivers control commands to devices.
type DeviceCommander interface {
	SendCommand(ctx context.Context, cmd *DeviceCommand) error

	// Close disconnects from the broker.
	Close() error
}
