package ingest

import (
	"time"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// revenueScale converts transaction amounts to the display unit (thousands).
const revenueScale = 1000.0

// derive fills every feature computed from the normalized fields. Fields
// keyed on the start instant stay nil when it is nil; the session itself is
// never dropped.
func derive(s *domain.Session) {
	s.RevenueThousands = s.Amount / revenueScale

	if s.Start == nil {
		return
	}
	start := *s.Start

	hour := start.Hour()
	s.Hour = &hour

	wd := domain.WeekdayOf(start)
	s.Weekday = &wd

	month := int(start.Month())
	s.MonthNum = &month
	s.MonthName = start.Month().String()

	_, week := start.ISOWeek()
	s.ISOWeek = &week

	// Date is normalized to UTC midnight so snapshots round-trip exactly.
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	s.Date = &date
}
