package entity

import (
	"time"

	"github.com/google/uuid"
)

// ControlState is the runtime switch state of a device.
type ControlState string

const (
	ControlStateOn  ControlState = "on"
	ControlStateOff ControlState = "off"
)

// IsValid checks if the ControlState is a valid value.
func (s ControlState) IsValid() bool {
	return s == ControlStateOn || s == ControlStateOff
}

// DeviceControl holds the capability flags and mutable runtime state of a device.
type DeviceControl struct {
	ID                uuid.UUID
	DeviceID          uuid.UUID
	UserID            uuid.UUID
	CanTurnOnOff      bool
	CanSetPowerLevel  bool
	CanSchedule       bool
	CurrentState      ControlState
	CurrentPowerLevel int // Percent, 0-100.
	LastCommandAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDefaultDeviceControl returns the control record created alongside a device.
func NewDefaultDeviceControl(device *Device) *DeviceControl {
	state := ControlStateOff
	if device.Status == DeviceStatusActive {
		state = ControlStateOn
	}

	return &DeviceControl{
		DeviceID:          device.ID,
		UserID:            device.UserID,
		CanTurnOnOff:      true,
		CanSetPowerLevel:  device.Type == DeviceTypeHVAC || device.Type == DeviceTypeLighting,
		CanSchedule:       true,
		CurrentState:      state,
		CurrentPowerLevel: 100,
	}
}
