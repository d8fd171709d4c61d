package analytics

import (
	"math"
	"math/rand"
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/pkg/errors"
)

// DemoRatePerKwh is the tariff applied to fixture series.
const DemoRatePerKwh = 6.5

const (
	baseDailyKWh      = 25.0
	seasonalAmplitude = 5.0
	dailyNoise        = 3.0

	hourlyBaseline = 0.8
	morningBump    = 1.2
	eveningBump    = 1.8
	hourlyNoise    = 0.1
)

// TimeRange is one of the chart windows offered by the dashboard.
type TimeRange string

const (
	TimeRange24h TimeRange = "24h"
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
	TimeRange90d TimeRange = "90d"
)

// ErrInvalidTimeRange is returned by ParseTimeRange for unknown values.
var ErrInvalidTimeRange = errors.New("invalid time range")

// ParseTimeRange validates s. An empty string means 7d.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case "":
		return TimeRange7d, nil
	case TimeRange24h, TimeRange7d, TimeRange30d, TimeRange90d:
		return TimeRange(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidTimeRange, "%q", s)
	}
}

// Days returns how many days the range looks back. 24h is zero days and is bucketed hourly.
func (r TimeRange) Days() int {
	switch r {
	case TimeRange24h:
		return 0
	case TimeRange30d:
		return 30
	case TimeRange90d:
		return 90
	default:
		return 7
	}
}

// Hourly reports whether the range is bucketed by hour.
func (r TimeRange) Hourly() bool {
	return r == TimeRange24h
}

// Start returns the inclusive lower bound of the window ending at now.
func (r TimeRange) Start(now time.Time) time.Time {
	if r.Hourly() {
		return now.Truncate(time.Hour).Add(-24 * time.Hour)
	}
	y, m, d := now.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -r.Days())
}

// GenerateTimeSeries synthesises a chart for users without metered data.
// 24h yields 25 hourly points, the day ranges yield Days()+1 daily points ending today.
func GenerateTimeSeries(r TimeRange, now time.Time, rate float64, rng *rand.Rand) []entity.TimeSeriesPoint {
	if rate <= 0 {
		rate = DemoRatePerKwh
	}

	var points []entity.TimeSeriesPoint
	if r.Hourly() {
		start := r.Start(now)
		points = make([]entity.TimeSeriesPoint, 0, 25)
		for i := 0; i <= 24; i++ {
			ts := start.Add(time.Duration(i) * time.Hour)
			kwh := dailyConsumption(ts, rng) / 24 * hourShape(ts.Hour())
			points = append(points, fixturePoint(ts, kwh, rate))
		}

		return points
	}

	start := r.Start(now)
	days := r.Days()
	points = make([]entity.TimeSeriesPoint, 0, days+1)
	for i := 0; i <= days; i++ {
		ts := start.AddDate(0, 0, i)
		points = append(points, fixturePoint(ts, dailyConsumption(ts, rng), rate))
	}

	return points
}

// GenerateHourlyPattern returns a flat baseline with a morning and an evening bump.
func GenerateHourlyPattern(rng *rand.Rand) [24]float64 {
	var hours [24]float64
	for h := range hours {
		v := hourlyValue(h) + uniform(rng, hourlyNoise)
		hours[h] = round2(math.Max(0, v))
	}

	return hours
}

// GenerateRecommendations returns the fixed starter suggestions.
func GenerateRecommendations() []entity.Recommendation {
	return []entity.Recommendation{
		{
			Title:            "Shift heavy loads to off-peak hours",
			Description:      "Run the washing machine and water heater before 6 PM to avoid evening peak tariffs.",
			Category:         "scheduling",
			Priority:         entity.PriorityHigh,
			PotentialSavings: 450,
			Status:           entity.RecommendationStatusPending,
		},
		{
			Title:            "Raise the AC set point to 24°C",
			Description:      "Each degree above 20°C cuts air-conditioning consumption by roughly 6%.",
			Category:         "hvac",
			Priority:         entity.PriorityMedium,
			PotentialSavings: 300,
			Status:           entity.RecommendationStatusPending,
		},
		{
			Title:            "Switch remaining bulbs to LED",
			Description:      "LED lamps draw about a fifth of the power of incandescent bulbs for the same light.",
			Category:         "lighting",
			Priority:         entity.PriorityLow,
			PotentialSavings: 120,
			Status:           entity.RecommendationStatusPending,
		},
	}
}

func dailyConsumption(ts time.Time, rng *rand.Rand) float64 {
	seasonal := seasonalAmplitude * math.Sin(2*math.Pi*float64(ts.YearDay())/365)

	return math.Max(0, baseDailyKWh+seasonal+uniform(rng, dailyNoise))
}

func hourlyValue(h int) float64 {
	v := hourlyBaseline
	switch {
	case h >= 6 && h < 10:
		v += morningBump
	case h >= 18 && h < 23:
		v += eveningBump
	}

	return v
}

// hourShape is hourlyValue normalised so the 24 weights average to 1.
func hourShape(h int) float64 {
	var total float64
	for i := range 24 {
		total += hourlyValue(i)
	}

	return hourlyValue(h) / (total / 24)
}

func fixturePoint(ts time.Time, kwh, rate float64) entity.TimeSeriesPoint {
	kwh = round2(kwh)

	return entity.TimeSeriesPoint{
		Timestamp:    ts,
		Consumption:  kwh,
		Cost:         kwh * rate,
		PeakDemandKW: round2(kwh / 24 * 1.8),
		Source:       entity.DataSourceFixture,
	}
}

func uniform(rng *rand.Rand, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
