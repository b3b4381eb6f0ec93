package domain

// Filter sentinels. Stations are identified by non-empty ids, months by
// numbers 1-12, so both sentinels are outside their value spaces.
const (
	StationAll = "ALL"
	MonthAll   = 0
)

// FilterState is the active station/month selection. Both dimensions
// combine with logical AND; a sentinel value bypasses its dimension.
type FilterState struct {
	Station string
	Month   int
}

// DefaultFilter selects everything.
func DefaultFilter() FilterState {
	return FilterState{Station: StationAll, Month: MonthAll}
}

// Matches reports whether a session satisfies the selection. A session with
// a nil month (unparsable start timestamp) never matches a concrete month.
func (f FilterState) Matches(s Session) bool {
	if f.Station != StationAll && s.StationID != f.Station {
		return false
	}
	if f.Month != MonthAll {
		if s.MonthNum == nil || *s.MonthNum != f.Month {
			return false
		}
	}
	return true
}
