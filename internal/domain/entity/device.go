package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceType groups appliances for dashboards and recommendations.
type DeviceType string

const (
	DeviceTypeAppliance     DeviceType = "appliance"
	DeviceTypeLighting      DeviceType = "lighting"
	DeviceTypeHVAC          DeviceType = "hvac"
	DeviceTypeEntertainment DeviceType = "entertainment"
	DeviceTypeKitchen       DeviceType = "kitchen"
	DeviceTypeOther         DeviceType = "other"
)

// IsValid checks if the DeviceType is a valid value.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceTypeAppliance, DeviceTypeLighting, DeviceTypeHVAC,
		DeviceTypeEntertainment, DeviceTypeKitchen, DeviceTypeOther:
		return true
	default:
		return false
	}
}

// DeviceStatus is the on/off registration state shown in device lists.
type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "active"
	DeviceStatusInactive DeviceStatus = "inactive"
)

// IsValid checks if the DeviceStatus is a valid value.
func (s DeviceStatus) IsValid() bool {
	return s == DeviceStatusActive || s == DeviceStatusInactive
}

const (
	// DefaultEfficiencyScore is assigned to devices created without a score.
	DefaultEfficiencyScore = 75
	// MaxEfficiencyScore is the upper bound of the efficiency scale.
	MaxEfficiencyScore = 100
)

// Device is an energy-consuming appliance registered by a user.
type Device struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Type               DeviceType
	Brand              string
	Model              string
	PowerRating        float64 // Watts.
	Status             DeviceStatus
	Location           string
	EfficiencyScore    int     // 0-100.
	CurrentConsumption float64 // kW drawn right now.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsOwnedBy reports whether the device belongs to userID.
func (d *Device) IsOwnedBy(userID uuid.UUID) bool {
	return d != nil && d.UserID == userID
}

// DeviceFilter narrows device listings.
type DeviceFilter struct {
	Status DeviceStatus
	Type   DeviceType
}
