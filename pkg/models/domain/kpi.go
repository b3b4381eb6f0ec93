package domain

// KPISet are the scalar summaries over a filtered view.
//
// AvgDurationMinutes is nil when no session in the view has a parsable
// duration. PricePerKWh is nil when total energy is zero; it is never
// Inf or NaN.
type KPISet struct {
	TotalTransactions  int
	TotalEnergyKWh     float64
	TotalRevenue       float64
	UniqueUsers        int
	UniqueStations     int
	AvgDurationMinutes *float64
	PricePerKWh        *float64
}
