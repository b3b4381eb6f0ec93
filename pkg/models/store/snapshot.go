package store

// SnapshotVersion identifies the snapshot wire format. Decoders reject any
// other version instead of guessing.
const SnapshotVersion = 1

// Snapshot is the serialized form of a base dataset. Timestamps are encoded
// as RFC 3339 strings (nanosecond precision) and calendar dates as
// "2006-01-02"; nil derived fields stay null so a decode reproduces the
// derived records exactly without re-running ingestion.
type Snapshot struct {
	Version  int             `json:"version"`
	Sessions []SessionRecord `json:"sessions"`
}

// SessionRecord mirrors domain.Session field for field in wire-safe types.
type SessionRecord struct {
	ID        string `json:"id"`
	StationID string `json:"station_id"`
	UserID    string `json:"user_id"`

	Start           *string  `json:"start,omitempty"`
	End             *string  `json:"end,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
	EnergyKWh       float64  `json:"energy_kwh"`
	Amount          float64  `json:"amount"`
	AmountThird     float64  `json:"amount_third"`

	Hour      *int    `json:"hour,omitempty"`
	Weekday   *int    `json:"weekday,omitempty"`
	MonthNum  *int    `json:"month_num,omitempty"`
	MonthName string  `json:"month_name,omitempty"`
	ISOWeek   *int    `json:"iso_week,omitempty"`
	Date      *string `json:"date,omitempty"`

	RevenueThousands float64 `json:"revenue_thousands"`
}
