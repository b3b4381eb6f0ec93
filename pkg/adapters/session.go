package adapters

import (
	"fmt"
	"time"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/models/store"
)

const dateLayout = "2006-01-02"

func MapDomainSessionToStore(s domain.Session) store.SessionRecord {
	rec := store.SessionRecord{
		ID:               s.ID,
		StationID:        s.StationID,
		UserID:           s.UserID,
		DurationMinutes:  copyFloat(s.DurationMinutes),
		EnergyKWh:        s.EnergyKWh,
		Amount:           s.Amount,
		AmountThird:      s.AmountThird,
		Hour:             copyInt(s.Hour),
		MonthNum:         copyInt(s.MonthNum),
		MonthName:        s.MonthName,
		ISOWeek:          copyInt(s.ISOWeek),
		RevenueThousands: s.RevenueThousands,
	}
	if s.Start != nil {
		v := s.Start.Format(time.RFC3339Nano)
		rec.Start = &v
	}
	if s.End != nil {
		v := s.End.Format(time.RFC3339Nano)
		rec.End = &v
	}
	if s.Weekday != nil {
		v := int(*s.Weekday)
		rec.Weekday = &v
	}
	if s.Date != nil {
		v := s.Date.Format(dateLayout)
		rec.Date = &v
	}
	return rec
}

func MapStoreSessionToDomain(rec store.SessionRecord) (domain.Session, error) {
	s := domain.Session{
		ID:               rec.ID,
		StationID:        rec.StationID,
		UserID:           rec.UserID,
		DurationMinutes:  copyFloat(rec.DurationMinutes),
		EnergyKWh:        rec.EnergyKWh,
		Amount:           rec.Amount,
		AmountThird:      rec.AmountThird,
		Hour:             copyInt(rec.Hour),
		MonthNum:         copyInt(rec.MonthNum),
		MonthName:        rec.MonthName,
		ISOWeek:          copyInt(rec.ISOWeek),
		RevenueThousands: rec.RevenueThousands,
	}
	if rec.Start != nil {
		t, err := time.Parse(time.RFC3339Nano, *rec.Start)
		if err != nil {
			return domain.Session{}, fmt.Errorf("decode start of session %q: %w", rec.ID, err)
		}
		s.Start = &t
	}
	if rec.End != nil {
		t, err := time.Parse(time.RFC3339Nano, *rec.End)
		if err != nil {
			return domain.Session{}, fmt.Errorf("decode end of session %q: %w", rec.ID, err)
		}
		s.End = &t
	}
	if rec.Weekday != nil {
		w := domain.Weekday(*rec.Weekday)
		s.Weekday = &w
	}
	if rec.Date != nil {
		d, err := time.Parse(dateLayout, *rec.Date)
		if err != nil {
			return domain.Session{}, fmt.Errorf("decode date of session %q: %w", rec.ID, err)
		}
		s.Date = &d
	}
	return s, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
