package api

// KPISet carries the scalar dashboard summaries. Nullable KPIs marshal to
// JSON null rather than a fake number.
type KPISet struct {
	TotalTransactions  int      `json:"total_transactions"`
	TotalEnergyKWh     float64  `json:"total_energy_kwh"`
	TotalRevenue       float64  `json:"total_revenue"`
	UniqueUsers        int      `json:"unique_users"`
	UniqueStations     int      `json:"unique_stations"`
	AvgDurationMinutes *float64 `json:"avg_duration_minutes"`
	PricePerKWh        *float64 `json:"price_per_kwh"`
}

type HourlyBucket struct {
	Hour         int     `json:"hour"`
	Transactions int     `json:"transactions"`
	EnergyKWh    float64 `json:"energy_kwh"`
}

type WeekdayBucket struct {
	Day          string `json:"day"`
	Label        string `json:"label"`
	Transactions int    `json:"transactions"`
}

type StationUsage struct {
	StationID    string  `json:"station_id"`
	Transactions int     `json:"transactions"`
	EnergyKWh    float64 `json:"energy_kwh"`
	Revenue      float64 `json:"revenue"`
}

type EnergyHistogram struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	BinWidth float64 `json:"bin_width"`
	Counts   []int   `json:"counts"`
}

type DailyRevenuePoint struct {
	Date             string  `json:"date"`
	RevenueThousands float64 `json:"revenue_thousands"`
}

type MonthlyRevenuePoint struct {
	Month  int     `json:"month"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type DurationSummary struct {
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	Max        float64 `json:"max"`
	UpperFence float64 `json:"upper_fence"`
}

type ChartSet struct {
	Hourly         []HourlyBucket        `json:"hourly"`
	Weekdays       []WeekdayBucket       `json:"weekdays"`
	TopStations    []StationUsage        `json:"top_stations"`
	Energy         EnergyHistogram       `json:"energy"`
	DailyRevenue   []DailyRevenuePoint   `json:"daily_revenue"`
	MonthlyRevenue []MonthlyRevenuePoint `json:"monthly_revenue"`
	Durations      DurationSummary       `json:"durations"`
}

// Dashboard is the full response for one filter selection.
type Dashboard struct {
	Station string   `json:"station"`
	Month   int      `json:"month"`
	KPIs    KPISet   `json:"kpis"`
	Charts  ChartSet `json:"charts"`
}

// FilterOptions lists the selectable filter values, drawn from distinct
// values present in the base dataset.
type FilterOptions struct {
	Stations []string      `json:"stations"`
	Months   []MonthOption `json:"months"`
}

type MonthOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// SessionInfo describes an exploration session.
type SessionInfo struct {
	ID           string `json:"id"`
	Records      int    `json:"records"`
	BadTimestamp int    `json:"bad_timestamps"`
	BadDuration  int    `json:"bad_durations"`
}
