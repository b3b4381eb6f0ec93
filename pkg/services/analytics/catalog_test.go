package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

type sessionSpec struct {
	id       string
	station  string
	user     string
	start    string // "2006-01-02 15:04", empty for an unparsable timestamp
	duration float64 // minutes, negative for an unparsable duration
	energy   float64
	amount   float64
}

func buildSessions(specs []sessionSpec) []domain.Session {
	out := make([]domain.Session, 0, len(specs))
	for _, sp := range specs {
		s := domain.Session{
			ID:               sp.id,
			StationID:        sp.station,
			UserID:           sp.user,
			EnergyKWh:        sp.energy,
			Amount:           sp.amount,
			RevenueThousands: sp.amount / 1000,
		}
		if sp.start != "" {
			start, err := time.Parse("2006-01-02 15:04", sp.start)
			if err != nil {
				panic(err)
			}
			s.Start = &start
			hour := start.Hour()
			s.Hour = &hour
			wd := domain.WeekdayOf(start)
			s.Weekday = &wd
			month := int(start.Month())
			s.MonthNum = &month
			s.MonthName = start.Month().String()
			_, week := start.ISOWeek()
			s.ISOWeek = &week
			date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
			s.Date = &date
		}
		if sp.duration >= 0 {
			d := sp.duration
			s.DurationMinutes = &d
		}
		out = append(out, s)
	}
	return out
}

func TestHourlyUsage_ZeroFilledAndKeyedOnView(t *testing.T) {
	// Base dataset: three ST1 records at hours 8, 8, 14 and one ST2 record
	// at hour 9. Filtering to ST1 must not let hour 9 contribute.
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: 30, energy: 10},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 08:30", duration: 30, energy: 12},
		{id: "t3", station: "ST1", user: "u2", start: "2025-04-02 14:00", duration: 30, energy: 8},
		{id: "t4", station: "ST2", user: "u3", start: "2025-03-11 09:00", duration: 30, energy: 5},
	})

	view := make([]domain.Session, 0)
	for _, s := range sessions {
		if s.StationID == "ST1" {
			view = append(view, s)
		}
	}

	buckets := HourlyUsage(view)
	require.Len(t, buckets, 24)
	for h, b := range buckets {
		assert.Equal(t, h, b.Hour)
	}
	assert.Equal(t, 2, buckets[8].Transactions)
	assert.InDelta(t, 22.0, buckets[8].EnergyKWh, 1e-9)
	assert.Equal(t, 1, buckets[14].Transactions)
	assert.Equal(t, 0, buckets[9].Transactions)
	assert.Zero(t, buckets[9].EnergyKWh)
}

func TestHourlyUsage_ExcludesNilHours(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "", duration: 30, energy: 10},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: 30, energy: 5},
	})

	buckets := HourlyUsage(sessions)
	total := 0
	for _, b := range buckets {
		total += b.Transactions
	}
	assert.Equal(t, 1, total)
}

func TestWeekdayUsage_AlwaysSevenCanonicalKeys(t *testing.T) {
	// Only a Monday and a Wednesday are present.
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: 30},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-12 08:00", duration: 30},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-17 10:00", duration: 30},
	})

	buckets := WeekdayUsage(sessions)
	require.Len(t, buckets, 7)

	wantOrder := []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
		domain.Friday, domain.Saturday, domain.Sunday,
	}
	for i, b := range buckets {
		assert.Equal(t, wantOrder[i], b.Day)
		assert.Equal(t, wantOrder[i].Label(), b.Label)
	}

	assert.Equal(t, 2, buckets[0].Transactions) // both Mondays
	assert.Equal(t, 0, buckets[1].Transactions)
	assert.Equal(t, 1, buckets[2].Transactions)
	assert.Equal(t, 0, buckets[6].Transactions)
}

func TestWeekdayUsage_EmptyViewStillSevenKeys(t *testing.T) {
	buckets := WeekdayUsage(nil)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Transactions)
	}
}

func TestStationRanking_PartitionAndStableTieBreak(t *testing.T) {
	// ST2 and ST3 tie on two transactions each; ST2 is seen first.
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: 30, energy: 1, amount: 100},
		{id: "t2", station: "ST2", user: "u1", start: "2025-03-10 09:00", duration: 30, energy: 2, amount: 200},
		{id: "t3", station: "ST1", user: "u2", start: "2025-03-10 10:00", duration: 30, energy: 3, amount: 300},
		{id: "t4", station: "ST3", user: "u2", start: "2025-03-10 11:00", duration: 30, energy: 4, amount: 400},
		{id: "t5", station: "ST2", user: "u3", start: "2025-03-10 12:00", duration: 30, energy: 5, amount: 500},
		{id: "t6", station: "ST3", user: "u3", start: "2025-03-10 13:00", duration: 30, energy: 6, amount: 600},
		{id: "t7", station: "ST1", user: "u4", start: "2025-03-10 14:00", duration: 30, energy: 7, amount: 700},
	})

	ranking := StationRanking(sessions)
	require.Len(t, ranking, 3)

	// Pre-truncation counts partition the view.
	total := 0
	for _, r := range ranking {
		total += r.Transactions
	}
	assert.Equal(t, len(sessions), total)

	assert.Equal(t, "ST1", ranking[0].StationID)
	assert.Equal(t, 3, ranking[0].Transactions)
	assert.InDelta(t, 11.0, ranking[0].EnergyKWh, 1e-9)
	assert.InDelta(t, 1100.0, ranking[0].Revenue, 1e-9)

	// Equal counts keep first-seen order: ST2 before ST3.
	assert.Equal(t, "ST2", ranking[1].StationID)
	assert.Equal(t, "ST3", ranking[2].StationID)

	// Strictly descending by count.
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].Transactions, ranking[i].Transactions)
	}
}

func TestTopStations_TruncatesToN(t *testing.T) {
	specs := make([]sessionSpec, 0, 12)
	for i := 0; i < 12; i++ {
		specs = append(specs, sessionSpec{
			id:      fmt.Sprintf("t%d", i),
			station: fmt.Sprintf("ST%02d", i),
			user:    "u1",
			start:   "2025-03-10 08:00",
		})
	}
	sessions := buildSessions(specs)

	top := TopStations(sessions, 10)
	assert.Len(t, top, 10)
}

func TestEnergyDistribution(t *testing.T) {
	specs := []sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", energy: 0},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", energy: 25},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-10 10:00", energy: 50},
	}
	hist := EnergyDistribution(buildSessions(specs))

	assert.Equal(t, 0.0, hist.Min)
	assert.Equal(t, 50.0, hist.Max)
	require.Len(t, hist.Counts, 50)
	assert.InDelta(t, 1.0, hist.BinWidth, 1e-9)

	counted := 0
	for _, c := range hist.Counts {
		counted += c
	}
	assert.Equal(t, 3, counted)
	// Maximum value belongs to the last bin, not a phantom 51st.
	assert.Equal(t, 1, hist.Counts[49])
}

func TestEnergyDistribution_Degenerate(t *testing.T) {
	assert.Empty(t, EnergyDistribution(nil).Counts)

	same := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", energy: 7},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", energy: 7},
	})
	hist := EnergyDistribution(same)
	assert.Equal(t, 7.0, hist.Min)
	assert.Equal(t, 7.0, hist.Max)
	assert.Equal(t, 2, hist.Counts[0])
}

func TestDailyRevenue_ChronologicalAscending(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-12 08:00", amount: 2000},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", amount: 1000},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-10 10:00", amount: 3000},
		{id: "t4", station: "ST1", user: "u1", start: "", amount: 9000},
	})

	points := DailyRevenue(sessions)
	require.Len(t, points, 2)
	assert.Equal(t, "2025-03-10", points[0].Date.Format("2006-01-02"))
	assert.InDelta(t, 4.0, points[0].RevenueThousands, 1e-9)
	assert.Equal(t, "2025-03-12", points[1].Date.Format("2006-01-02"))
	assert.InDelta(t, 2.0, points[1].RevenueThousands, 1e-9)
}

func TestMonthlyRevenue_AscendingWithNames(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-04-02 08:00", amount: 500},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", amount: 1000},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-20 09:00", amount: 250},
	})

	points := MonthlyRevenue(sessions)
	require.Len(t, points, 2)
	assert.Equal(t, domain.MonthlyRevenuePoint{Month: 3, Name: "March", Amount: 1250}, points[0])
	assert.Equal(t, domain.MonthlyRevenuePoint{Month: 4, Name: "April", Amount: 500}, points[1])
}

func TestDurationDistribution(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: 10},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", duration: 20},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-10 10:00", duration: 30},
		{id: "t4", station: "ST1", user: "u1", start: "2025-03-10 11:00", duration: 40},
		{id: "t5", station: "ST1", user: "u1", start: "2025-03-10 12:00", duration: -1}, // unparsable
	})

	sum := DurationDistribution(sessions)
	assert.Equal(t, 4, sum.Count)
	assert.Equal(t, 10.0, sum.Min)
	assert.Equal(t, 40.0, sum.Max)
	assert.InDelta(t, 25.0, sum.Median, 1e-9)
	assert.InDelta(t, 17.5, sum.Q1, 1e-9)
	assert.InDelta(t, 32.5, sum.Q3, 1e-9)
	assert.InDelta(t, 32.5+1.5*15.0, sum.UpperFence, 1e-9)
}

func TestDurationDistribution_NoUsableValues(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00", duration: -1},
	})
	assert.Equal(t, domain.DurationSummary{}, DurationDistribution(sessions))
	assert.Equal(t, domain.DurationSummary{}, DurationDistribution(nil))
}
