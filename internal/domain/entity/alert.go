package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity orders alerts for display and fan-out.
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// IsValid checks if the AlertSeverity is a valid value.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical:
		return true
	default:
		return false
	}
}

// IsUrgent reports whether the alert is fanned out beyond the dashboard.
func (s AlertSeverity) IsUrgent() bool {
	return s == AlertSeverityHigh || s == AlertSeverityCritical
}

// EnergyAlert is a dashboard alert such as a consumption spike.
type EnergyAlert struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AlertType  string // e.g. "high_consumption", "device_offline", "bill_due"
	Severity   AlertSeverity
	Title      string
	Message    string
	DeviceID   *uuid.UUID
	IsRead     bool
	IsResolved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
