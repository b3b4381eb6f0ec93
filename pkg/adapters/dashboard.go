package adapters

import (
	"github.com/ev-tools/charge-atlas/pkg/models/api"
	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

func MapKPISetDomainToApi(k domain.KPISet) api.KPISet {
	return api.KPISet{
		TotalTransactions:  k.TotalTransactions,
		TotalEnergyKWh:     k.TotalEnergyKWh,
		TotalRevenue:       k.TotalRevenue,
		UniqueUsers:        k.UniqueUsers,
		UniqueStations:     k.UniqueStations,
		AvgDurationMinutes: copyFloat(k.AvgDurationMinutes),
		PricePerKWh:        copyFloat(k.PricePerKWh),
	}
}

func MapChartSetDomainToApi(c domain.ChartSet) api.ChartSet {
	out := api.ChartSet{
		Hourly:      make([]api.HourlyBucket, 0, len(c.Hourly)),
		Weekdays:    make([]api.WeekdayBucket, 0, len(c.Weekdays)),
		TopStations: make([]api.StationUsage, 0, len(c.TopStations)),
		Energy: api.EnergyHistogram{
			Min:      c.Energy.Min,
			Max:      c.Energy.Max,
			BinWidth: c.Energy.BinWidth,
			Counts:   append([]int(nil), c.Energy.Counts...),
		},
		DailyRevenue:   make([]api.DailyRevenuePoint, 0, len(c.DailyRevenue)),
		MonthlyRevenue: make([]api.MonthlyRevenuePoint, 0, len(c.MonthlyRevenue)),
		Durations: api.DurationSummary{
			Count:      c.Durations.Count,
			Min:        c.Durations.Min,
			Q1:         c.Durations.Q1,
			Median:     c.Durations.Median,
			Q3:         c.Durations.Q3,
			Max:        c.Durations.Max,
			UpperFence: c.Durations.UpperFence,
		},
	}

	for _, b := range c.Hourly {
		out.Hourly = append(out.Hourly, api.HourlyBucket{
			Hour:         b.Hour,
			Transactions: b.Transactions,
			EnergyKWh:    b.EnergyKWh,
		})
	}
	for _, b := range c.Weekdays {
		out.Weekdays = append(out.Weekdays, api.WeekdayBucket{
			Day:          b.Day.String(),
			Label:        b.Label,
			Transactions: b.Transactions,
		})
	}
	for _, s := range c.TopStations {
		out.TopStations = append(out.TopStations, api.StationUsage{
			StationID:    s.StationID,
			Transactions: s.Transactions,
			EnergyKWh:    s.EnergyKWh,
			Revenue:      s.Revenue,
		})
	}
	for _, p := range c.DailyRevenue {
		out.DailyRevenue = append(out.DailyRevenue, api.DailyRevenuePoint{
			Date:             p.Date.Format(dateLayout),
			RevenueThousands: p.RevenueThousands,
		})
	}
	for _, p := range c.MonthlyRevenue {
		out.MonthlyRevenue = append(out.MonthlyRevenue, api.MonthlyRevenuePoint{
			Month:  p.Month,
			Name:   p.Name,
			Amount: p.Amount,
		})
	}
	return out
}

func MapMonthOptionsDomainToApi(months []domain.MonthOption) []api.MonthOption {
	out := make([]api.MonthOption, 0, len(months))
	for _, m := range months {
		out = append(out, api.MonthOption{Number: m.Number, Name: m.Name})
	}
	return out
}
