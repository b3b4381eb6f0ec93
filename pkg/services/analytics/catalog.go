package analytics

import (
	"sort"
	"time"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// energyBins is the fixed bin count for the energy histogram.
const energyBins = 50

// HourlyUsage groups the view by hour of day, counting sessions and summing
// energy. All 24 buckets are returned, zero-filled, so chart axes stay
// stable across filter changes. Sessions with a nil hour are excluded.
func HourlyUsage(view []domain.Session) []domain.HourlyBucket {
	buckets := make([]domain.HourlyBucket, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, s := range view {
		if s.Hour == nil {
			continue
		}
		buckets[*s.Hour].Transactions++
		buckets[*s.Hour].EnergyKWh += s.EnergyKWh
	}
	return buckets
}

// WeekdayUsage counts sessions per weekday. The result always holds exactly
// 7 buckets in canonical Monday-first order; absent days report zero.
func WeekdayUsage(view []domain.Session) []domain.WeekdayBucket {
	buckets := make([]domain.WeekdayBucket, 7)
	for d := range buckets {
		day := domain.Weekday(d)
		buckets[d].Day = day
		buckets[d].Label = day.Label()
	}
	for _, s := range view {
		if s.Weekday == nil {
			continue
		}
		buckets[*s.Weekday].Transactions++
	}
	return buckets
}

// StationRanking aggregates every station in the view, sorted by
// transaction count descending. The sort is stable: stations with equal
// counts keep their first-seen order from the view.
func StationRanking(view []domain.Session) []domain.StationUsage {
	index := make(map[string]int)
	ranking := make([]domain.StationUsage, 0)
	for _, s := range view {
		i, ok := index[s.StationID]
		if !ok {
			i = len(ranking)
			index[s.StationID] = i
			ranking = append(ranking, domain.StationUsage{StationID: s.StationID})
		}
		ranking[i].Transactions++
		ranking[i].EnergyKWh += s.EnergyKWh
		ranking[i].Revenue += s.Amount
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Transactions > ranking[j].Transactions
	})
	return ranking
}

// TopStations truncates the station ranking to its first n entries.
func TopStations(view []domain.Session, n int) []domain.StationUsage {
	ranking := StationRanking(view)
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// EnergyDistribution builds a histogram of per-session energy over
// energyBins equal-width bins spanning the observed min-max range. The
// maximum value lands in the last bin. An empty view yields no bins.
func EnergyDistribution(view []domain.Session) domain.EnergyHistogram {
	if len(view) == 0 {
		return domain.EnergyHistogram{}
	}

	min, max := view[0].EnergyKWh, view[0].EnergyKWh
	for _, s := range view[1:] {
		if s.EnergyKWh < min {
			min = s.EnergyKWh
		}
		if s.EnergyKWh > max {
			max = s.EnergyKWh
		}
	}

	hist := domain.EnergyHistogram{
		Min:      min,
		Max:      max,
		BinWidth: (max - min) / energyBins,
		Counts:   make([]int, energyBins),
	}
	for _, s := range view {
		i := 0
		if hist.BinWidth > 0 {
			i = int((s.EnergyKWh - min) / hist.BinWidth)
			if i >= energyBins {
				i = energyBins - 1
			}
		}
		hist.Counts[i]++
	}
	return hist
}

// DailyRevenue sums display revenue per calendar date, chronologically
// ascending. Sessions without a date are excluded.
func DailyRevenue(view []domain.Session) []domain.DailyRevenuePoint {
	sums := make(map[time.Time]float64)
	for _, s := range view {
		if s.Date == nil {
			continue
		}
		sums[*s.Date] += s.RevenueThousands
	}
	points := make([]domain.DailyRevenuePoint, 0, len(sums))
	for date, sum := range sums {
		points = append(points, domain.DailyRevenuePoint{Date: date, RevenueThousands: sum})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// MonthlyRevenue sums transaction amounts per month, ascending by month
// number, carrying the month's display name.
func MonthlyRevenue(view []domain.Session) []domain.MonthlyRevenuePoint {
	sums := make(map[int]float64)
	names := make(map[int]string)
	for _, s := range view {
		if s.MonthNum == nil {
			continue
		}
		sums[*s.MonthNum] += s.Amount
		names[*s.MonthNum] = s.MonthName
	}
	points := make([]domain.MonthlyRevenuePoint, 0, len(sums))
	for month, sum := range sums {
		points = append(points, domain.MonthlyRevenuePoint{
			Month:  month,
			Name:   names[month],
			Amount: sum,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// DurationDistribution summarizes session durations with a five-number
// summary and the usual box-plot upper fence. Only sessions with a parsable
// duration contribute; an empty sample yields the zero summary.
func DurationDistribution(view []domain.Session) domain.DurationSummary {
	values := make([]float64, 0, len(view))
	for _, s := range view {
		if s.DurationMinutes != nil {
			values = append(values, *s.DurationMinutes)
		}
	}
	if len(values) == 0 {
		return domain.DurationSummary{}
	}
	sort.Float64s(values)

	q1 := quantile(values, 0.25)
	q3 := quantile(values, 0.75)
	return domain.DurationSummary{
		Count:      len(values),
		Min:        values[0],
		Q1:         q1,
		Median:     quantile(values, 0.5),
		Q3:         q3,
		Max:        values[len(values)-1],
		UpperFence: q3 + 1.5*(q3-q1),
	}
}

// quantile interpolates linearly between adjacent order statistics, the
// same method pandas uses for box-plot quartiles.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
