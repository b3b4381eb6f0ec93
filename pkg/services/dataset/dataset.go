package dataset

import (
	"sort"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// Dataset is the immutable base dataset produced at load time. All filter
// and aggregation reads derive from it without mutation, so concurrent
// reads need no locking; replacing a dataset means constructing a new one.
type Dataset struct {
	sessions []domain.Session
	stations []string
	months   []domain.MonthOption
}

// New builds a dataset handle over the given sessions. The slice is copied
// so later caller mutations cannot reach the handle.
func New(sessions []domain.Session) *Dataset {
	d := &Dataset{
		sessions: append([]domain.Session(nil), sessions...),
	}

	stationSet := make(map[string]struct{})
	monthNames := make(map[int]string)
	for _, s := range d.sessions {
		stationSet[s.StationID] = struct{}{}
		if s.MonthNum != nil {
			monthNames[*s.MonthNum] = s.MonthName
		}
	}

	d.stations = make([]string, 0, len(stationSet))
	for st := range stationSet {
		d.stations = append(d.stations, st)
	}
	sort.Strings(d.stations)

	d.months = make([]domain.MonthOption, 0, len(monthNames))
	for num, name := range monthNames {
		d.months = append(d.months, domain.MonthOption{Number: num, Name: name})
	}
	sort.Slice(d.months, func(i, j int) bool { return d.months[i].Number < d.months[j].Number })

	return d
}

// Empty is the "no dataset" state: every KPI evaluates to its zero value
// and every aggregation to an empty result.
func Empty() *Dataset {
	return New(nil)
}

func (d *Dataset) Len() int {
	return len(d.sessions)
}

// Sessions exposes the full record set. Callers must treat it as read-only.
func (d *Dataset) Sessions() []domain.Session {
	return d.sessions
}

// Stations lists the distinct station ids present, sorted.
func (d *Dataset) Stations() []string {
	return d.stations
}

// Months lists the distinct months present, ascending by month number.
func (d *Dataset) Months() []domain.MonthOption {
	return d.months
}

// Filter returns the view satisfying the selection. The view preserves base
// order, is recomputed on every call, and never touches the base records.
func (d *Dataset) Filter(f domain.FilterState) []domain.Session {
	if f.Station == domain.StationAll && f.Month == domain.MonthAll {
		return d.sessions
	}
	view := make([]domain.Session, 0, len(d.sessions))
	for _, s := range d.sessions {
		if f.Matches(s) {
			view = append(view, s)
		}
	}
	return view
}

// HasStation reports whether the id is a valid filter value for this
// dataset. The ALL sentinel is always valid.
func (d *Dataset) HasStation(id string) bool {
	if id == domain.StationAll {
		return true
	}
	i := sort.SearchStrings(d.stations, id)
	return i < len(d.stations) && d.stations[i] == id
}

// HasMonth reports whether the month number is a valid filter value.
func (d *Dataset) HasMonth(num int) bool {
	if num == domain.MonthAll {
		return true
	}
	for _, m := range d.months {
		if m.Number == num {
			return true
		}
	}
	return false
}
