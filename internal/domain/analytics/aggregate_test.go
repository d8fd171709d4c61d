package analytics

import (
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketRecords_Daily(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)
	records := []*entity.ConsumptionRecord{
		{RecordedAt: time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC), ConsumptionKWh: 10, Cost: 65, PeakDemandKW: 2},
		{RecordedAt: time.Date(2026, 6, 8, 21, 0, 0, 0, time.UTC), ConsumptionKWh: 5, Cost: 32.5, PeakDemandKW: 3},
		{RecordedAt: time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC), ConsumptionKWh: 4, Cost: 26},
		{RecordedAt: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), ConsumptionKWh: 100},
	}

	points := BucketRecords(records, TimeRange7d, now)
	require.Len(t, points, 8)
	assert.InDelta(t, 15, points[0].Consumption, 1e-9)
	assert.InDelta(t, 97.5, points[0].Cost, 1e-9)
	assert.InDelta(t, 3, points[0].PeakDemandKW, 1e-9)
	assert.InDelta(t, 4, points[7].Consumption, 1e-9)
	for _, p := range points {
		assert.Equal(t, entity.DataSourceLive, p.Source)
	}
}

func TestBucketRecords_Hourly(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 14, 20, 0, 0, time.UTC)
	records := []*entity.ConsumptionRecord{
		{RecordedAt: time.Date(2026, 6, 15, 14, 5, 0, 0, time.UTC), ConsumptionKWh: 1.5},
		{RecordedAt: time.Date(2026, 6, 14, 14, 30, 0, 0, time.UTC), ConsumptionKWh: 0.5},
	}

	points := BucketRecords(records, TimeRange24h, now)
	require.Len(t, points, 25)
	assert.InDelta(t, 0.5, points[0].Consumption, 1e-9)
	assert.InDelta(t, 1.5, points[24].Consumption, 1e-9)
}

func TestHourlyAverages(t *testing.T) {
	t.Parallel()

	records := []*entity.ConsumptionRecord{
		{RecordedAt: time.Date(2026, 6, 14, 7, 0, 0, 0, time.UTC), ConsumptionKWh: 2},
		{RecordedAt: time.Date(2026, 6, 15, 7, 0, 0, 0, time.UTC), ConsumptionKWh: 4},
		{RecordedAt: time.Date(2026, 6, 15, 19, 0, 0, 0, time.UTC), ConsumptionKWh: 6},
	}

	hours := HourlyAverages(records)
	assert.InDelta(t, 3, hours[7], 1e-9)
	assert.InDelta(t, 3, hours[19], 1e-9)
	assert.Zero(t, hours[0])
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	points := []entity.TimeSeriesPoint{
		{Consumption: 10, Cost: 65, PeakDemandKW: 1},
		{Consumption: 12, Cost: 78, PeakDemandKW: 4},
		{Consumption: 14, Cost: 91, PeakDemandKW: 2},
	}

	s := Summarize(TimeRange7d, points, entity.DataSourceLive)
	assert.InDelta(t, 36, s.TotalConsumption, 1e-9)
	assert.InDelta(t, 234, s.TotalCost, 1e-9)
	assert.InDelta(t, 12, s.AverageDaily, 1e-9)
	assert.InDelta(t, 4, s.PeakDemandKW, 1e-9)
	assert.InDelta(t, 2, s.Trend, 1e-9)
	assert.Equal(t, "7d", s.TimeRange)
	assert.Equal(t, entity.DataSourceLive, s.Source)
}
