package domain

import "time"

// HourlyBucket is one hour-of-day slot of the hourly usage chart.
type HourlyBucket struct {
	Hour         int
	Transactions int
	EnergyKWh    float64
}

// WeekdayBucket is one day of the weekday usage chart.
type WeekdayBucket struct {
	Day          Weekday
	Label        string
	Transactions int
}

// StationUsage is one station's row in the station ranking.
type StationUsage struct {
	StationID    string
	Transactions int
	EnergyKWh    float64
	Revenue      float64
}

// EnergyHistogram is a fixed-bin histogram of per-session energy spanning
// the observed min-max range. Counts is empty when the view has no records.
type EnergyHistogram struct {
	Min      float64
	Max      float64
	BinWidth float64
	Counts   []int
}

// DailyRevenuePoint is one calendar day of the revenue trend, in thousands.
type DailyRevenuePoint struct {
	Date             time.Time
	RevenueThousands float64
}

// MonthlyRevenuePoint is one month of the revenue trend.
type MonthlyRevenuePoint struct {
	Month  int
	Name   string
	Amount float64
}

// DurationSummary is a five-number summary of session durations in minutes
// plus the upper outlier fence (Q3 + 1.5*IQR). Sessions without a parsable
// duration are excluded; Count is the number that contributed.
type DurationSummary struct {
	Count      int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	UpperFence float64
}

// ChartSet bundles every catalog aggregation computed over one filtered
// view. It is a pure derivation and is recomputed on every read.
type ChartSet struct {
	Hourly         []HourlyBucket
	Weekdays       []WeekdayBucket
	TopStations    []StationUsage
	Energy         EnergyHistogram
	DailyRevenue   []DailyRevenuePoint
	MonthlyRevenue []MonthlyRevenuePoint
	Durations      DurationSummary
}
