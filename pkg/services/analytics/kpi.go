package analytics

import (
	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
)

// topStationCount is how many stations the station chart shows.
const topStationCount = 10

// Summarize computes the KPI set over a filtered view. Every statistic,
// including the uniqueness counts, is taken over the view, never over the
// unfiltered baseline.
func Summarize(view []domain.Session) domain.KPISet {
	kpi := domain.KPISet{
		TotalTransactions: len(view),
	}

	users := make(map[string]struct{})
	stations := make(map[string]struct{})
	var durationSum float64
	var durationCount int
	for _, s := range view {
		kpi.TotalEnergyKWh += s.EnergyKWh
		kpi.TotalRevenue += s.Amount
		users[s.UserID] = struct{}{}
		stations[s.StationID] = struct{}{}
		if s.DurationMinutes != nil {
			durationSum += *s.DurationMinutes
			durationCount++
		}
	}
	kpi.UniqueUsers = len(users)
	kpi.UniqueStations = len(stations)

	if durationCount > 0 {
		avg := durationSum / float64(durationCount)
		kpi.AvgDurationMinutes = &avg
	}
	// Zero total energy leaves the price KPI nil; it must never surface
	// as Inf or NaN.
	if kpi.TotalEnergyKWh != 0 {
		price := kpi.TotalRevenue / kpi.TotalEnergyKWh
		kpi.PricePerKWh = &price
	}
	return kpi
}

// Charts evaluates the full aggregation catalog over a filtered view.
func Charts(view []domain.Session) domain.ChartSet {
	return domain.ChartSet{
		Hourly:         HourlyUsage(view),
		Weekdays:       WeekdayUsage(view),
		TopStations:    TopStations(view, topStationCount),
		Energy:         EnergyDistribution(view),
		DailyRevenue:   DailyRevenue(view),
		MonthlyRevenue: MonthlyRevenue(view),
		Durations:      DurationDistribution(view),
	}
}

// Evaluate is the pure recomputation entrypoint: one dataset handle plus
// one filter state in, the complete KPI and chart result set out. Filter
// state is threaded explicitly; there is no ambient shared state.
func Evaluate(ds *dataset.Dataset, f domain.FilterState) (domain.KPISet, domain.ChartSet) {
	view := ds.Filter(f)
	return Summarize(view), Charts(view)
}
