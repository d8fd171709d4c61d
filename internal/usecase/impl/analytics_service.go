package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPredictionDays = 7
	maxPredictionDays     = 30
	hourlyPatternDays     = 30
)

type analyticsService struct {
	consumptionRepo repository.ConsumptionRepository
	deviceRepo      repository.DeviceRepository
	fixtureFallback bool
	window          int
	logger          *slog.Logger
	now             func() time.Time
	newRand         func() *rand.Rand
}

// AnalyticsServiceParams holds dependencies for AnalyticsService.
type AnalyticsServiceParams struct {
	fx.In

	ConsumptionRepo repository.ConsumptionRepository
	DeviceRepo      repository.DeviceRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	srv := &analyticsService{
		consumptionRepo: params.ConsumptionRepo,
		deviceRepo:      params.DeviceRepo,
		fixtureFallback: true,
		window:          3,
		logger:          params.Logger,
		now:             time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	if cfg := params.Config; cfg != nil && cfg.Analytics != nil {
		srv.fixtureFallback = cfg.Analytics.FixtureFallback
		if cfg.Analytics.MovingAverageWindow > 0 {
			srv.window = cfg.Analytics.MovingAverageWindow
		}
	}

	return srv
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TimeSeries buckets the user's readings over r. Fixture data is served only
// when the live query succeeds with no rows.
func (srv *analyticsService) TimeSeries(ctx context.Context, userID uuid.UUID, r analytics.TimeRange) (*entity.TimeSeries, error) {
	now := srv.now()

	records, err := srv.consumptionRepo.ListConsumption(ctx, userID, entity.ConsumptionFilter{From: r.Start(now)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load consumption for time series")
	}

	if len(records) == 0 && srv.fixtureFallback {
		srv.log(ctx).Debug("Serving fixture time series", slog.Any("userID", userID), slog.String("range", string(r)))

		return &entity.TimeSeries{
			TimeRange: string(r),
			Points:    analytics.GenerateTimeSeries(r, now, analytics.DemoRatePerKwh, srv.newRand()),
			Source:    entity.DataSourceFixture,
		}, nil
	}

	return &entity.TimeSeries{
		TimeRange: string(r),
		Points:    analytics.BucketRecords(records, r, now),
		Source:    entity.DataSourceLive,
	}, nil
}

// HourlyPattern averages the last 30 days of readings by hour of day.
func (srv *analyticsService) HourlyPattern(ctx context.Context, userID uuid.UUID) (*entity.HourlyPattern, error) {
	from := srv.now().AddDate(0, 0, -hourlyPatternDays)

	records, err := srv.consumptionRepo.ListConsumption(ctx, userID, entity.ConsumptionFilter{From: from})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load consumption for hourly pattern")
	}

	if len(records) == 0 && srv.fixtureFallback {
		return &entity.HourlyPattern{
			Hours:  analytics.GenerateHourlyPattern(srv.newRand()),
			Source: entity.DataSourceFixture,
		}, nil
	}

	return &entity.HourlyPattern{
		Hours:  analytics.HourlyAverages(records),
		Source: entity.DataSourceLive,
	}, nil
}

// Predictions extrapolates the 30-day daily series. days defaults to 7 and is capped at 30.
func (srv *analyticsService) Predictions(ctx context.Context, userID uuid.UUID, days int) (*entity.PredictionSet, error) {
	if days <= 0 {
		days = defaultPredictionDays
	}
	if days > maxPredictionDays {
		days = maxPredictionDays
	}

	series, err := srv.TimeSeries(ctx, userID, analytics.TimeRange30d)
	if err != nil {
		return nil, err
	}

	values := analytics.Values(series.Points)
	start := srv.now()
	if n := len(series.Points); n > 0 {
		start = series.Points[n-1].Timestamp
	}

	predictions := analytics.PredictConsumption(values, srv.window, days, start)
	if predictions == nil {
		predictions = []entity.Prediction{}
	}

	return &entity.PredictionSet{
		Predictions: predictions,
		Trend:       analytics.CalculateTrend(values),
		Source:      series.Source,
	}, nil
}

// Summary totals the series of r and reports its trend.
func (srv *analyticsService) Summary(ctx context.Context, userID uuid.UUID, r analytics.TimeRange) (*entity.ConsumptionSummary, error) {
	series, err := srv.TimeSeries(ctx, userID, r)
	if err != nil {
		return nil, err
	}

	summary := analytics.Summarize(r, series.Points, series.Source)

	return &summary, nil
}

// Snapshot reports the current draw of active devices and today's totals.
func (srv *analyticsService) Snapshot(ctx context.Context, userID uuid.UUID) (*entity.RealtimeSnapshot, error) {
	now := srv.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	devices, err := srv.deviceRepo.ListDevices(ctx, userID, entity.DeviceFilter{Status: entity.DeviceStatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active devices")
	}

	records, err := srv.consumptionRepo.ListConsumption(ctx, userID, entity.ConsumptionFilter{From: midnight})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load today's consumption")
	}

	snapshot := &entity.RealtimeSnapshot{
		Timestamp:     now,
		ActiveDevices: len(devices),
		Source:        entity.DataSourceLive,
	}
	for _, dev := range devices {
		snapshot.CurrentPowerKW += dev.CurrentConsumption
	}
	for _, rec := range records {
		snapshot.TodayKWh += rec.ConsumptionKWh
		snapshot.TodayCost += rec.Cost
	}

	return snapshot, nil
}
