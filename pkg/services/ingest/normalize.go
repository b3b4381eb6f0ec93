package ingest

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order. The source mixes encodings within a
// single column, so every row is matched independently.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// parseTimestamp attempts every known layout and reports failure instead of
// returning an error; a row with an unreadable timestamp is kept with a nil
// instant.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDurationMinutes converts an "H:MM:SS" string to minutes. Anything
// that does not split into exactly three numeric parts is a parse failure,
// reported through ok rather than an error or a panic.
func parseDurationMinutes(s string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, false
	}
	return h*60 + m + sec/60, true
}

// parseAmount reads a numeric field, defaulting to zero on malformed input.
// Monetary columns arrive in major currency units already; amountScale
// exists so a minor-unit source can be accommodated in one place.
const amountScale = 1.0

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v / amountScale
}

func parseEnergy(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
