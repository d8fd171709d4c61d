package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMovingAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []float64
		window int
		want   []float64
	}{
		{name: "window of three", data: []float64{1, 2, 3, 4, 5}, window: 3, want: []float64{2, 3, 4}},
		{name: "window equals length", data: []float64{2, 4}, window: 2, want: []float64{3}},
		{name: "window of one is identity", data: []float64{5, 7}, window: 1, want: []float64{5, 7}},
		{name: "window larger than data", data: []float64{1, 2}, window: 3, want: []float64{}},
		{name: "zero window", data: []float64{1, 2}, window: 0, want: []float64{}},
		{name: "empty data", data: nil, window: 1, want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CalculateMovingAverage(tt.data, tt.window)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestCalculateTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{name: "empty", data: nil, want: 0},
		{name: "single point", data: []float64{42}, want: 0},
		{name: "constant", data: []float64{3, 3, 3, 3}, want: 0},
		{name: "increasing line", data: []float64{1, 3, 5, 7, 9}, want: 2},
		{name: "decreasing line", data: []float64{10, 9.5, 9, 8.5}, want: -0.5},
		{name: "NaN input", data: []float64{1, math.NaN(), 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, CalculateTrend(tt.data), 1e-9)
		})
	}
}

func TestCalculateTrend_LinearSeries(t *testing.T) {
	t.Parallel()

	const a, b = 12.5, 0.75
	data := make([]float64, 30)
	for i := range data {
		data[i] = a + b*float64(i)
	}

	assert.InDelta(t, b, CalculateTrend(data), 1e-9)
}

func TestPredictConsumption(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data := []float64{10, 12, 14, 16, 18}

	predictions := PredictConsumption(data, 3, 10, start)
	require.Len(t, predictions, 10)

	// last moving average is (14+16+18)/3 = 16, slope is 2.
	assert.InDelta(t, 18, predictions[0].Consumption, 1e-9)
	assert.InDelta(t, 0.95, predictions[0].Confidence, 1e-9)
	assert.Equal(t, start.AddDate(0, 0, 1), predictions[0].Date)
	assert.InDelta(t, 36, predictions[9].Consumption, 1e-9)
	assert.InDelta(t, MinConfidence, predictions[9].Confidence, 1e-9)

	for i := 1; i < len(predictions); i++ {
		assert.LessOrEqual(t, predictions[i].Confidence, predictions[i-1].Confidence)
	}
}

func TestPredictConsumption_ClampsAtZero(t *testing.T) {
	t.Parallel()

	predictions := PredictConsumption([]float64{6, 4, 2}, 1, 5, time.Now())
	require.Len(t, predictions, 5)
	for _, p := range predictions {
		assert.GreaterOrEqual(t, p.Consumption, 0.0)
	}
	assert.Zero(t, predictions[4].Consumption)
}

func TestPredictConsumption_WindowTooLarge(t *testing.T) {
	t.Parallel()

	assert.Nil(t, PredictConsumption([]float64{1, 2}, 3, 7, time.Now()))
	assert.Nil(t, PredictConsumption([]float64{1, 2}, 1, 0, time.Now()))
}
