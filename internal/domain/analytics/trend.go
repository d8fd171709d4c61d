// Package analytics holds the pure consumption math behind the analytics
// endpoints: moving averages, least-squares trends, short-horizon predictions
// and the fixture generators used when a user has no metered data yet.
package analytics

import (
	"math"
	"time"

	"urjabandhu/internal/domain/entity"
)

const (
	// MinConfidence is the floor of the prediction confidence decay.
	MinConfidence = 0.6
	// ConfidenceDecayPerDay is subtracted from 1 for every day ahead.
	ConfidenceDecayPerDay = 0.05
)

// CalculateMovingAverage returns the trailing-window means of data.
// The result has len(data)-window+1 values and is empty when the window does not fit.
func CalculateMovingAverage(data []float64, window int) []float64 {
	if window <= 0 || window > len(data) {
		return []float64{}
	}

	out := make([]float64, 0, len(data)-window+1)
	var sum float64
	for i, v := range data {
		sum += v
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}

	return out
}

// CalculateTrend returns the ordinary-least-squares slope of data against x = 0..n-1.
// Series shorter than two points, constant series and NaN results yield 0.
func CalculateTrend(data []float64) float64 {
	n := float64(len(data))
	if len(data) <= 1 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range data {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	// Rounding noise on flat input.
	if math.Abs(slope) < 1e-12 {
		return 0
	}

	return slope
}

// PredictConsumption extrapolates days values past the end of data, starting the day after start.
// It returns nil when the moving-average window does not fit the data.
func PredictConsumption(data []float64, window, days int, start time.Time) []entity.Prediction {
	ma := CalculateMovingAverage(data, window)
	if len(ma) == 0 || days <= 0 {
		return nil
	}

	lastMA := ma[len(ma)-1]
	slope := CalculateTrend(data)

	predictions := make([]entity.Prediction, 0, days)
	for day := 1; day <= days; day++ {
		predictions = append(predictions, entity.Prediction{
			Date:        start.AddDate(0, 0, day),
			Consumption: math.Max(0, lastMA+slope*float64(day)),
			Confidence:  math.Max(MinConfidence, 1-ConfidenceDecayPerDay*float64(day)),
		})
	}

	return predictions
}
