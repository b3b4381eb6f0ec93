package analytics

import "github.com/ev-tools/charge-atlas/pkg/models/domain"

// Extrema helpers feed the narrative consumers of the dashboard. All of
// them break ties by first occurrence, matching index-of-first-maximum
// semantics, and report ok=false when the view holds no usable data.

// PeakHour is the first hour with the highest transaction count.
func PeakHour(hourly []domain.HourlyBucket) (int, bool) {
	return hourExtremum(hourly, func(best, cur int) bool { return cur > best })
}

// QuietHour is the first hour with the lowest non-zero transaction count.
// Zero-filled buckets do not participate; an hour nobody charged in is
// absence, not a minimum.
func QuietHour(hourly []domain.HourlyBucket) (int, bool) {
	return hourExtremum(hourly, func(best, cur int) bool { return cur < best })
}

func hourExtremum(hourly []domain.HourlyBucket, better func(best, cur int) bool) (int, bool) {
	best := -1
	bestCount := 0
	for _, b := range hourly {
		if b.Transactions == 0 {
			continue
		}
		if best == -1 || better(bestCount, b.Transactions) {
			best = b.Hour
			bestCount = b.Transactions
		}
	}
	return best, best != -1
}

// BusiestWeekday is the first weekday with the highest count.
func BusiestWeekday(weekdays []domain.WeekdayBucket) (domain.Weekday, bool) {
	best := -1
	bestCount := 0
	for i, b := range weekdays {
		if b.Transactions == 0 {
			continue
		}
		if best == -1 || b.Transactions > bestCount {
			best = i
			bestCount = b.Transactions
		}
	}
	if best == -1 {
		return 0, false
	}
	return weekdays[best].Day, true
}

// QuietestWeekday is the first weekday with the lowest non-zero count.
func QuietestWeekday(weekdays []domain.WeekdayBucket) (domain.Weekday, bool) {
	best := -1
	bestCount := 0
	for i, b := range weekdays {
		if b.Transactions == 0 {
			continue
		}
		if best == -1 || b.Transactions < bestCount {
			best = i
			bestCount = b.Transactions
		}
	}
	if best == -1 {
		return 0, false
	}
	return weekdays[best].Day, true
}

// LeadingStation is the top entry of the station ranking, which already
// carries first-seen tie ordering.
func LeadingStation(ranking []domain.StationUsage) (domain.StationUsage, bool) {
	if len(ranking) == 0 {
		return domain.StationUsage{}, false
	}
	return ranking[0], true
}

// BestMonth is the first month with the highest revenue.
func BestMonth(months []domain.MonthlyRevenuePoint) (domain.MonthlyRevenuePoint, bool) {
	if len(months) == 0 {
		return domain.MonthlyRevenuePoint{}, false
	}
	best := months[0]
	for _, m := range months[1:] {
		if m.Amount > best.Amount {
			best = m
		}
	}
	return best, true
}
