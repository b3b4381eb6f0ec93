package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// ErrMissingColumn marks a schema failure: the source lacks a required
// column. It is fatal for the whole load, unlike per-row parse failures.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	"id",
	"evse_uid",
	"user_id",
	"start_date_time",
	"end_date_time",
	"duration",
	"energy_kwh",
	"amount_transaction",
	"amount_third",
}

// Stats counts row-level fields that could not be parsed. The affected
// sessions are retained with nil fields.
type Stats struct {
	Rows          int
	BadTimestamps int
	BadDurations  int
}

// Load reads charging sessions from CSV data. Row-level timestamp and
// duration problems are counted in Stats, never returned as errors; only an
// unreadable source or a missing required column fails the load.
func Load(r io.Reader) ([]domain.Session, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, Stats{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var (
		sessions []domain.Session
		stats    Stats
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Stats{}, fmt.Errorf("read row %d: %w", stats.Rows+2, err)
		}

		field := func(name string) string {
			i := idx[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		s := domain.Session{
			ID:          field("id"),
			StationID:   field("evse_uid"),
			UserID:      field("user_id"),
			EnergyKWh:   parseEnergy(field("energy_kwh")),
			Amount:      parseAmount(field("amount_transaction")),
			AmountThird: parseAmount(field("amount_third")),
		}

		if t, ok := parseTimestamp(field("start_date_time")); ok {
			s.Start = &t
		} else {
			stats.BadTimestamps++
		}
		if t, ok := parseTimestamp(field("end_date_time")); ok {
			s.End = &t
		} else {
			stats.BadTimestamps++
		}

		// The duration column is the source of truth; it is never
		// recomputed from end-start.
		if d, ok := parseDurationMinutes(field("duration")); ok {
			s.DurationMinutes = &d
		} else {
			stats.BadDurations++
		}

		derive(&s)
		sessions = append(sessions, s)
		stats.Rows++
	}

	return sessions, stats, nil
}

// LoadCSV loads sessions from a file on disk.
func LoadCSV(path string) ([]domain.Session, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFirst tries each path in order and returns the first successful load.
// It fails only when every candidate fails.
func LoadFirst(paths ...string) ([]domain.Session, Stats, error) {
	var errs []error
	for _, path := range paths {
		sessions, stats, err := LoadCSV(path)
		if err == nil {
			return sessions, stats, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, Stats{}, errors.New("no source paths given")
	}
	return nil, Stats{}, fmt.Errorf("all sources failed: %w", errors.Join(errs...))
}
