package analytics

import (
	"math/rand"
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    TimeRange
		wantErr bool
	}{
		{in: "", want: TimeRange7d},
		{in: "24h", want: TimeRange24h},
		{in: "7d", want: TimeRange7d},
		{in: "30d", want: TimeRange30d},
		{in: "90d", want: TimeRange90d},
		{in: "1y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTimeRange(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeRange)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTimeSeries_PointCounts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		r    TimeRange
		want int
	}{
		{r: TimeRange24h, want: 25},
		{r: TimeRange7d, want: 8},
		{r: TimeRange30d, want: 31},
		{r: TimeRange90d, want: 91},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			t.Parallel()

			points := GenerateTimeSeries(tt.r, now, DemoRatePerKwh, rand.New(rand.NewSource(1)))
			assert.Len(t, points, tt.want)
		})
	}
}

func TestGenerateTimeSeries_SevenDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	points := GenerateTimeSeries(TimeRange7d, now, DemoRatePerKwh, rand.New(rand.NewSource(42)))

	require.Len(t, points, 8)
	assert.Equal(t, time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC), points[0].Timestamp)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), points[7].Timestamp)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Consumption, 0.0)
		assert.InDelta(t, p.Consumption*DemoRatePerKwh, p.Cost, 1e-9)
		assert.Equal(t, entity.DataSourceFixture, p.Source)
		// base 25 with a 5 kWh seasonal swing and 3 kWh noise.
		assert.InDelta(t, 25, p.Consumption, 8.01)
	}
}

func TestGenerateTimeSeries_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateTimeSeries(TimeRange30d, now, 7, rand.New(rand.NewSource(7)))
	b := GenerateTimeSeries(TimeRange30d, now, 7, rand.New(rand.NewSource(7)))

	assert.Equal(t, a, b)
}

func TestGenerateHourlyPattern(t *testing.T) {
	t.Parallel()

	hours := GenerateHourlyPattern(rand.New(rand.NewSource(3)))

	assert.InDelta(t, 0.8, hours[2], 0.11)
	assert.InDelta(t, 2.0, hours[7], 0.11)
	assert.InDelta(t, 2.6, hours[20], 0.11)
	assert.Greater(t, hours[20], hours[7])
	assert.Greater(t, hours[7], hours[13])
}

func TestGenerateRecommendations(t *testing.T) {
	t.Parallel()

	recs := GenerateRecommendations()
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.True(t, r.Priority.IsValid())
		assert.Equal(t, entity.RecommendationStatusPending, r.Status)
		assert.Positive(t, r.PotentialSavings)
	}
}
