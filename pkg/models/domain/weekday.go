package domain

import "time"

// Weekday is a Monday-first day of week. The zero value is Monday, so the
// numeric order is also the canonical sort order for weekday aggregations.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayLabels = [7]string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// Label is the localized display name used by the dashboard.
func (w Weekday) Label() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayLabels[w]
}

// WeekdayOf converts the standard library's Sunday-first weekday to the
// canonical Monday-first enumeration.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
