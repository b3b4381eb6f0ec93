package domain

import "time"

// Report is a complete dashboard evaluation for one filter selection,
// ready for rendering or export.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Filter      FilterState
	KPIs        KPISet
	Charts      ChartSet
}
