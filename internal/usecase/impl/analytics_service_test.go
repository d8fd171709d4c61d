package impl

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"
	mockRepo "urjabandhu/internal/mocks/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service         usecase.AnalyticsUsecase
	consumptionRepo *mockRepo.MockConsumptionRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	now             time.Time
}

func createTestAnalyticsService(t *testing.T, fixtureFallback bool) analyticsServiceFixtures {
	consumptionRepo := mockRepo.NewMockConsumptionRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := newTestConfig()
	cfg.Analytics.FixtureFallback = fixtureFallback

	service := NewAnalyticsService(AnalyticsServiceParams{
		ConsumptionRepo: consumptionRepo,
		DeviceRepo:      deviceRepo,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	impl := service.(*analyticsService)
	impl.now = fixedClock(now)
	impl.newRand = func() *rand.Rand { return rand.New(rand.NewSource(1)) }

	return analyticsServiceFixtures{
		service:         service,
		consumptionRepo: consumptionRepo,
		deviceRepo:      deviceRepo,
		now:             now,
	}
}

func TestAnalyticsService_TimeSeries_Live(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	start := analytics.TimeRange7d.Start(fx.now)

	fx.consumptionRepo.EXPECT().
		ListConsumption(ctx, userID, entity.ConsumptionFilter{From: start}).
		Return([]*entity.ConsumptionRecord{
			{RecordedAt: start.Add(2 * time.Hour), ConsumptionKWh: 4, Cost: 32, PeakDemandKW: 1.2},
			{RecordedAt: start.Add(20 * time.Hour), ConsumptionKWh: 1, Cost: 8, PeakDemandKW: 2.4},
		}, nil)

	series, err := fx.service.TimeSeries(ctx, userID, analytics.TimeRange7d)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceLive, series.Source)
	require.Len(t, series.Points, 8)
	assert.Equal(t, 5.0, series.Points[0].Consumption)
	assert.Equal(t, 40.0, series.Points[0].Cost)
	assert.Equal(t, 2.4, series.Points[0].PeakDemandKW)
	assert.Zero(t, series.Points[7].Consumption)
}

func TestAnalyticsService_TimeSeries_FixtureWhenEmpty(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	fx.consumptionRepo.EXPECT().ListConsumption(ctx, userID, mock.Anything).Return([]*entity.ConsumptionRecord{}, nil)

	series, err := fx.service.TimeSeries(ctx, userID, analytics.TimeRange24h)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceFixture, series.Source)
	assert.Len(t, series.Points, 25)
	for _, p := range series.Points {
		assert.Equal(t, entity.DataSourceFixture, p.Source)
	}
}

func TestAnalyticsService_TimeSeries_NoFallback(t *testing.T) {
	fx := createTestAnalyticsService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	fx.consumptionRepo.EXPECT().ListConsumption(ctx, userID, mock.Anything).Return(nil, nil)

	series, err := fx.service.TimeSeries(ctx, userID, analytics.TimeRange30d)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceLive, series.Source)
	assert.Len(t, series.Points, 31)
}

func TestAnalyticsService_TimeSeries_QueryErrorIsNotMasked(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	fx.consumptionRepo.EXPECT().ListConsumption(ctx, userID, mock.Anything).Return(nil, errors.New("db down"))

	series, err := fx.service.TimeSeries(ctx, userID, analytics.TimeRange7d)

	require.Error(t, err)
	assert.Nil(t, series)
}

func TestAnalyticsService_HourlyPattern_Live(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	day1 := time.Date(2024, 5, 30, 18, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	fx.consumptionRepo.EXPECT().
		ListConsumption(ctx, userID, entity.ConsumptionFilter{From: fx.now.AddDate(0, 0, -30)}).
		Return([]*entity.ConsumptionRecord{
			{RecordedAt: day1, ConsumptionKWh: 2},
			{RecordedAt: day2, ConsumptionKWh: 3},
		}, nil)

	pattern, err := fx.service.HourlyPattern(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceLive, pattern.Source)
	assert.Equal(t, 2.5, pattern.Hours[18])
	assert.Zero(t, pattern.Hours[3])
}

func TestAnalyticsService_Predictions_DaysClamped(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "default", days: 0, want: 7},
		{name: "explicit", days: 3, want: 3},
		{name: "capped", days: 90, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t, true)

			ctx := context.Background()
			userID := uuid.New()
			fx.consumptionRepo.EXPECT().ListConsumption(ctx, userID, mock.Anything).Return(nil, nil)

			set, err := fx.service.Predictions(ctx, userID, tt.days)

			require.NoError(t, err)
			assert.Len(t, set.Predictions, tt.want)
			assert.Equal(t, entity.DataSourceFixture, set.Source)
		})
	}
}

func TestAnalyticsService_Summary_TagsSource(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	fx.consumptionRepo.EXPECT().ListConsumption(ctx, userID, mock.Anything).Return(nil, nil)

	summary, err := fx.service.Summary(ctx, userID, analytics.TimeRange7d)

	require.NoError(t, err)
	assert.Equal(t, entity.DataSourceFixture, summary.Source)
	assert.Positive(t, summary.TotalConsumption)
}

func TestAnalyticsService_Snapshot(t *testing.T) {
	fx := createTestAnalyticsService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	midnight := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		ListDevices(ctx, userID, entity.DeviceFilter{Status: entity.DeviceStatusActive}).
		Return([]*entity.Device{{CurrentConsumption: 1.5}, {CurrentConsumption: 0.25}}, nil)
	fx.consumptionRepo.EXPECT().
		ListConsumption(ctx, userID, entity.ConsumptionFilter{From: midnight}).
		Return([]*entity.ConsumptionRecord{{ConsumptionKWh: 2, Cost: 16}, {ConsumptionKWh: 1, Cost: 8}}, nil)

	snapshot, err := fx.service.Snapshot(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.ActiveDevices)
	assert.InDelta(t, 1.75, snapshot.CurrentPowerKW, 0.0001)
	assert.InDelta(t, 3.0, snapshot.TodayKWh, 0.0001)
	assert.InDelta(t, 24.0, snapshot.TodayCost, 0.0001)
	assert.Equal(t, fx.now, snapshot.Timestamp)
}
