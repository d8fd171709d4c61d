package analytics

import (
	"time"

	"urjabandhu/internal/domain/entity"
)

// BucketRecords sums readings into the buckets of r ending at now and tags them live.
// Buckets without readings are kept with zero values so charts have a fixed width.
func BucketRecords(records []*entity.ConsumptionRecord, r TimeRange, now time.Time) []entity.TimeSeriesPoint {
	start := r.Start(now)
	n := r.Days() + 1
	step := func(i int) time.Time { return start.AddDate(0, 0, i) }
	if r.Hourly() {
		n = 25
		step = func(i int) time.Time { return start.Add(time.Duration(i) * time.Hour) }
	}

	points := make([]entity.TimeSeriesPoint, n)
	for i := range points {
		points[i] = entity.TimeSeriesPoint{Timestamp: step(i), Source: entity.DataSourceLive}
	}

	for _, rec := range records {
		idx := bucketIndex(rec.RecordedAt, start, r)
		if idx < 0 || idx >= n {
			continue
		}
		p := &points[idx]
		p.Consumption += rec.ConsumptionKWh
		p.Cost += rec.Cost
		if rec.PeakDemandKW > p.PeakDemandKW {
			p.PeakDemandKW = rec.PeakDemandKW
		}
	}

	for i := range points {
		points[i].Consumption = round2(points[i].Consumption)
		points[i].Cost = round2(points[i].Cost)
	}

	return points
}

// HourlyAverages averages readings by hour of day across distinct days.
func HourlyAverages(records []*entity.ConsumptionRecord) [24]float64 {
	var sums [24]float64
	days := map[[3]int]struct{}{}
	for _, rec := range records {
		y, m, d := rec.RecordedAt.Date()
		days[[3]int{y, int(m), d}] = struct{}{}
		sums[rec.RecordedAt.Hour()] += rec.ConsumptionKWh
	}

	var out [24]float64
	if len(days) == 0 {
		return out
	}
	for h := range sums {
		out[h] = round2(sums[h] / float64(len(days)))
	}

	return out
}

// Summarize totals a series and fits its trend.
func Summarize(r TimeRange, points []entity.TimeSeriesPoint, source entity.DataSource) entity.ConsumptionSummary {
	summary := entity.ConsumptionSummary{TimeRange: string(r), Source: source}
	values := make([]float64, 0, len(points))
	for _, p := range points {
		summary.TotalConsumption += p.Consumption
		summary.TotalCost += p.Cost
		if p.PeakDemandKW > summary.PeakDemandKW {
			summary.PeakDemandKW = p.PeakDemandKW
		}
		values = append(values, p.Consumption)
	}

	days := len(points)
	if r.Hourly() {
		days = 1
	}
	if days > 0 {
		summary.AverageDaily = round2(summary.TotalConsumption / float64(days))
	}
	summary.TotalConsumption = round2(summary.TotalConsumption)
	summary.TotalCost = round2(summary.TotalCost)
	summary.Trend = CalculateTrend(values)

	return summary
}

// Values extracts the consumption column of a series.
func Values(points []entity.TimeSeriesPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Consumption
	}

	return out
}

func bucketIndex(t, start time.Time, r TimeRange) int {
	if t.Before(start) {
		return -1
	}
	if r.Hourly() {
		return int(t.Sub(start) / time.Hour)
	}
	t = t.In(start.Location())
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, start.Location())

	return int(day.Sub(start).Hours()+0.5) / 24
}
