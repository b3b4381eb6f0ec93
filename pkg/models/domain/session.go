package domain

import "time"

// Session is one charging transaction after normalization and feature
// derivation. Timestamp-derived fields are pointers: a session whose start
// instant could not be parsed keeps nil derived fields but still counts
// towards transaction totals.
type Session struct {
	ID        string
	StationID string
	UserID    string

	Start           *time.Time
	End             *time.Time
	DurationMinutes *float64
	EnergyKWh       float64
	Amount          float64
	AmountThird     float64

	// Derived from Start; all nil when Start is nil.
	Hour      *int
	Weekday   *Weekday
	MonthNum  *int
	MonthName string
	ISOWeek   *int
	Date      *time.Time

	// Amount rescaled for display, in thousands.
	RevenueThousands float64
}

// MonthOption is a selectable month in the filter UI: the key used for
// filtering plus its display name.
type MonthOption struct {
	Number int
	Name   string
}
