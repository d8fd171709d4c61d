package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsumptionRecord is one metered reading.
type ConsumptionRecord struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DeviceID       *uuid.UUID // nil for whole-home readings.
	RecordedAt     time.Time
	ConsumptionKWh float64
	Cost           float64
	PeakDemandKW   float64
	CreatedAt      time.Time
}

// ConsumptionFilter narrows consumption listings. Zero times are unbounded.
type ConsumptionFilter struct {
	From     time.Time
	To       time.Time
	DeviceID *uuid.UUID
	Limit    int
}
