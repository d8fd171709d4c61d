package entity

import "time"

// DataSource tags every analytics payload with where its numbers came from.
type DataSource string

const (
	DataSourceLive    DataSource = "live"
	DataSourceFixture DataSource = "fixture"
)

// TimeSeriesPoint is one bucket of a consumption chart.
type TimeSeriesPoint struct {
	Timestamp    time.Time  `json:"timestamp"`
	Consumption  float64    `json:"consumption"`
	Cost         float64    `json:"cost"`
	PeakDemandKW float64    `json:"peak_demand_kw"`
	Source       DataSource `json:"source"`
}

// TimeSeries is a chart payload.
type TimeSeries struct {
	TimeRange string            `json:"time_range"`
	Points    []TimeSeriesPoint `json:"points"`
	Source    DataSource        `json:"source"`
}

// HourlyPattern is the average consumption per hour of day.
type HourlyPattern struct {
	Hours  [24]float64 `json:"hours"`
	Source DataSource  `json:"source"`
}

// Prediction is one extrapolated day.
type Prediction struct {
	Date        time.Time `json:"date"`
	Consumption float64   `json:"consumption"`
	Confidence  float64   `json:"confidence"`
}

// PredictionSet is a prediction payload.
type PredictionSet struct {
	Predictions []Prediction `json:"predictions"`
	Trend       float64      `json:"trend"`
	Source      DataSource   `json:"source"`
}

// ConsumptionSummary aggregates a time range.
type ConsumptionSummary struct {
	TimeRange        string     `json:"time_range"`
	TotalConsumption float64    `json:"total_consumption"`
	TotalCost        float64    `json:"total_cost"`
	AverageDaily     float64    `json:"average_daily"`
	PeakDemandKW     float64    `json:"peak_demand_kw"`
	Trend            float64    `json:"trend"`
	Source           DataSource `json:"source"`
}

// RealtimeSnapshot is one frame of the real-time feed.
type RealtimeSnapshot struct {
	Timestamp      time.Time  `json:"timestamp"`
	CurrentPowerKW float64    `json:"current_power_kw"`
	TodayKWh       float64    `json:"today_kwh"`
	TodayCost      float64    `json:"today_cost"`
	ActiveDevices  int        `json:"active_devices"`
	Source         DataSource `json:"source"`
}
