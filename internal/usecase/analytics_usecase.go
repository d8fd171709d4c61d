package usecase

import (
	"context"

	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase derives dashboards from consumption records. Every result
// carries its source; fixture data only replaces an empty live result.
type AnalyticsUsecase interface {
	TimeSeries(ctx context.Context, userID uuid.UUID, r analytics.TimeRange) (*entity.TimeSeries, error)
	HourlyPattern(ctx context.Context, userID uuid.UUID) (*entity.HourlyPattern, error)
	Predictions(ctx context.Context, userID uuid.UUID, days int) (*entity.PredictionSet, error)
	Summary(ctx context.Context, userID uuid.UUID, r analytics.TimeRange) (*entity.ConsumptionSummary, error)

	// Snapshot is one real-time reading built from live data only.
	Snapshot(ctx context.Context, userID uuid.UUID) (*entity.RealtimeSnapshot, error)
}
