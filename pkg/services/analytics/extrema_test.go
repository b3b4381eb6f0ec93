package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

func TestPeakHour_FirstOccurrenceWinsTies(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00"},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 08:30"},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-10 14:00"},
		{id: "t4", station: "ST1", user: "u1", start: "2025-03-10 14:30"},
		{id: "t5", station: "ST1", user: "u1", start: "2025-03-10 20:00"},
	})
	hourly := HourlyUsage(sessions)

	peak, ok := PeakHour(hourly)
	require.True(t, ok)
	assert.Equal(t, 8, peak) // 8 and 14 tie at two, earliest hour wins

	quiet, ok := QuietHour(hourly)
	require.True(t, ok)
	assert.Equal(t, 20, quiet)
}

func TestQuietHour_IgnoresZeroBuckets(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 14:00"},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 14:30"},
	})
	quiet, ok := QuietHour(HourlyUsage(sessions))
	require.True(t, ok)
	// Every other hour is zero-filled; none of them may beat 14.
	assert.Equal(t, 14, quiet)
}

func TestHourExtrema_EmptyView(t *testing.T) {
	_, ok := PeakHour(HourlyUsage(nil))
	assert.False(t, ok)
	_, ok = QuietHour(HourlyUsage(nil))
	assert.False(t, ok)
}

func TestWeekdayExtrema(t *testing.T) {
	// Two Mondays, two Wednesdays, one Friday.
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST1", user: "u1", start: "2025-03-10 08:00"},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-17 08:00"},
		{id: "t3", station: "ST1", user: "u1", start: "2025-03-12 08:00"},
		{id: "t4", station: "ST1", user: "u1", start: "2025-03-19 08:00"},
		{id: "t5", station: "ST1", user: "u1", start: "2025-03-14 08:00"},
	})
	weekdays := WeekdayUsage(sessions)

	busiest, ok := BusiestWeekday(weekdays)
	require.True(t, ok)
	assert.Equal(t, domain.Monday, busiest) // ties with Wednesday, earlier day wins

	quietest, ok := QuietestWeekday(weekdays)
	require.True(t, ok)
	assert.Equal(t, domain.Friday, quietest)

	_, ok = BusiestWeekday(WeekdayUsage(nil))
	assert.False(t, ok)
}

func TestLeadingStation(t *testing.T) {
	sessions := buildSessions([]sessionSpec{
		{id: "t1", station: "ST2", user: "u1", start: "2025-03-10 08:00", energy: 5},
		{id: "t2", station: "ST1", user: "u1", start: "2025-03-10 09:00", energy: 5},
		{id: "t3", station: "ST2", user: "u1", start: "2025-03-10 10:00", energy: 5},
	})

	lead, ok := LeadingStation(StationRanking(sessions))
	require.True(t, ok)
	assert.Equal(t, "ST2", lead.StationID)
	assert.Equal(t, 2, lead.Transactions)

	_, ok = LeadingStation(nil)
	assert.False(t, ok)
}

func TestBestMonth(t *testing.T) {
	months := []domain.MonthlyRevenuePoint{
		{Month: 3, Name: "March", Amount: 1200},
		{Month: 4, Name: "April", Amount: 900},
		{Month: 5, Name: "May", Amount: 1200},
	}

	best, ok := BestMonth(months)
	require.True(t, ok)
	assert.Equal(t, 3, best.Month) // equal revenue keeps the earlier entry

	_, ok = BestMonth(nil)
	assert.False(t, ok)
}
