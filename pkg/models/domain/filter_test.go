package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStateMatches(t *testing.T) {
	march := 3
	session := Session{StationID: "ST1", MonthNum: &march}
	noMonth := Session{StationID: "ST1"}

	tests := []struct {
		name   string
		filter FilterState
		s      Session
		want   bool
	}{
		{"default matches everything", DefaultFilter(), session, true},
		{"station match", FilterState{Station: "ST1", Month: MonthAll}, session, true},
		{"station mismatch", FilterState{Station: "ST2", Month: MonthAll}, session, false},
		{"month match", FilterState{Station: StationAll, Month: 3}, session, true},
		{"month mismatch", FilterState{Station: StationAll, Month: 4}, session, false},
		{"both must hold", FilterState{Station: "ST2", Month: 3}, session, false},
		{"nil month never matches a concrete month", FilterState{Station: StationAll, Month: 3}, noMonth, false},
		{"nil month still matches the sentinel", DefaultFilter(), noMonth, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.s))
		})
	}
}
