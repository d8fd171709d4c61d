package usecase

import (
	"context"
	"io"
	"time"

	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordConsumptionInput is one meter or device reading.
type RecordConsumptionInput struct {
	DeviceID       *uuid.UUID
	RecordedAt     time.Time
	ConsumptionKWh float64
	Cost           *float64 // Derived from the profile's rate when nil.
	PeakDemandKW   float64
}

// ConsumptionUsecase reads and writes raw consumption records.
type ConsumptionUsecase interface {
	ListConsumption(ctx context.Context, userID uuid.UUID, filter entity.ConsumptionFilter) ([]*entity.ConsumptionRecord, error)
	RecordConsumption(ctx context.Context, userID uuid.UUID, input *RecordConsumptionInput) (*entity.ConsumptionRecord, error)
	// ExportConsumptionCSV writes the time series for r as CSV to w.
	ExportConsumptionCSV(ctx context.Context, userID uuid.UUID, r analytics.TimeRange, w io.Writer) error
}
