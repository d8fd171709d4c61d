package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockUsecase "urjabandhu/internal/mocks/usecase"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type consumptionServiceFixtures struct {
	service     usecase.ConsumptionUsecase
	repo        *mockRepo.MockConsumptionRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	profileRepo *mockRepo.MockProfileRepository
	analytics   *mockUsecase.MockAnalyticsUsecase
	now         time.Time
}

func createTestConsumptionService(t *testing.T) consumptionServiceFixtures {
	repo := mockRepo.NewMockConsumptionRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)

	service := NewConsumptionService(ConsumptionServiceParams{
		ConsumptionRepo: repo,
		DeviceRepo:      deviceRepo,
		ProfileRepo:     profileRepo,
		Analytics:       analyticsUC,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	service.(*consumptionService).now = fixedClock(now)

	return consumptionServiceFixtures{
		service:     service,
		repo:        repo,
		deviceRepo:  deviceRepo,
		profileRepo: profileRepo,
		analytics:   analyticsUC,
		now:         now,
	}
}

func TestConsumptionService_RecordConsumption_CostFromProfileRate(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID, EnergyRate: 5}, nil)
	fx.repo.EXPECT().CreateConsumption(ctx, mock.AnythingOfType("*entity.ConsumptionRecord")).Return(nil)

	record, err := fx.service.RecordConsumption(ctx, userID, &usecase.RecordConsumptionInput{ConsumptionKWh: 3})

	require.NoError(t, err)
	assert.InDelta(t, 15.0, record.Cost, 0.001)
	assert.Equal(t, fx.now, record.RecordedAt)
}

func TestConsumptionService_RecordConsumption_DefaultRateWithoutProfile(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.repo.EXPECT().CreateConsumption(ctx, mock.Anything).Return(nil)

	record, err := fx.service.RecordConsumption(ctx, userID, &usecase.RecordConsumptionInput{ConsumptionKWh: 2})

	require.NoError(t, err)
	assert.InDelta(t, 16.0, record.Cost, 0.001)
}

func TestConsumptionService_RecordConsumption_ExplicitCost(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	cost := 42.0
	recordedAt := fx.now.Add(-time.Hour)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.repo.EXPECT().CreateConsumption(ctx, mock.Anything).Return(nil)

	record, err := fx.service.RecordConsumption(ctx, userID, &usecase.RecordConsumptionInput{
		DeviceID:       &deviceID,
		RecordedAt:     recordedAt,
		ConsumptionKWh: 2,
		Cost:           &cost,
	})

	require.NoError(t, err)
	assert.Equal(t, cost, record.Cost)
	assert.Equal(t, recordedAt, record.RecordedAt)
}

func TestConsumptionService_RecordConsumption_Negative(t *testing.T) {
	fx := createTestConsumptionService(t)

	_, err := fx.service.RecordConsumption(context.Background(), uuid.New(), &usecase.RecordConsumptionInput{ConsumptionKWh: -1})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConsumptionService_ListConsumption_InvertedWindow(t *testing.T) {
	fx := createTestConsumptionService(t)

	records, err := fx.service.ListConsumption(context.Background(), uuid.New(), entity.ConsumptionFilter{
		From: fx.now,
		To:   fx.now.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestConsumptionService_ExportConsumptionCSV(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.analytics.EXPECT().TimeSeries(ctx, userID, analytics.TimeRange7d).Return(&entity.TimeSeries{
		TimeRange: string(analytics.TimeRange7d),
		Source:    entity.DataSourceLive,
		Points: []entity.TimeSeriesPoint{
			{Timestamp: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), Consumption: 12.5, Cost: 100, PeakDemandKW: 2.25, Source: entity.DataSourceLive},
			{Timestamp: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Consumption: 10, Cost: 80, PeakDemandKW: 1.5, Source: entity.DataSourceLive},
		},
	}, nil)

	var buf bytes.Buffer
	err := fx.service.ExportConsumptionCSV(ctx, userID, analytics.TimeRange7d, &buf)

	require.NoError(t, err)
	assert.Equal(t,
		"date,consumption_kwh,cost,peak_demand_kw,source\n"+
			"2024-05-31,12.50,100.00,2.25,live\n"+
			"2024-06-01,10.00,80.00,1.50,live\n",
		buf.String())
}

func TestConsumptionService_ExportConsumptionCSV_HourlyTimestamps(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.analytics.EXPECT().TimeSeries(ctx, userID, analytics.TimeRange24h).Return(&entity.TimeSeries{
		Points: []entity.TimeSeriesPoint{
			{Timestamp: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), Consumption: 0.5, Source: entity.DataSourceFixture},
		},
	}, nil)

	var buf bytes.Buffer
	err := fx.service.ExportConsumptionCSV(ctx, userID, analytics.TimeRange24h, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2024-06-01T09:00:00Z,0.50,0.00,0.00,fixture\n")
}

func TestConsumptionService_ExportConsumptionCSV_SeriesError(t *testing.T) {
	fx := createTestConsumptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.analytics.EXPECT().TimeSeries(ctx, userID, analytics.TimeRange30d).Return(nil, errors.New("db error"))

	var buf bytes.Buffer
	err := fx.service.ExportConsumptionCSV(ctx, userID, analytics.TimeRange30d, &buf)

	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
