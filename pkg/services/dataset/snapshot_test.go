package dataset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
)

const snapshotCSV = "id,evse_uid,user_id,start_date_time,end_date_time,duration,energy_kwh,amount_transaction,amount_third\n" +
	"t1,ST1,u1,2025-03-10 08:15:00,2025-03-10 09:45:00,1:30:00,22.5,45000,1200\n" +
	"t2,ST2,u2,2025-03-11T14:00:00Z,2025-03-11T15:10:30Z,1:10:30,18.25,30500,0\n" +
	"t3,ST1,u3,not-a-date,2025-03-12 10:00:00,bad,0,0,0\n"

func TestSnapshotRoundTrip(t *testing.T) {
	sessions, _, err := ingest.Load(strings.NewReader(snapshotCSV))
	require.NoError(t, err)
	original := New(sessions)

	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(original, &buf))

	restored, err := DecodeSnapshot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, original.Len(), restored.Len())

	for i, want := range original.Sessions() {
		got := restored.Sessions()[i]

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.StationID, got.StationID)
		assert.Equal(t, want.UserID, got.UserID)
		assertTimeEqual(t, want.Start, got.Start)
		assertTimeEqual(t, want.End, got.End)
		assert.Equal(t, want.DurationMinutes, got.DurationMinutes)
		assert.Equal(t, want.EnergyKWh, got.EnergyKWh)
		assert.Equal(t, want.Amount, got.Amount)
		assert.Equal(t, want.AmountThird, got.AmountThird)
		assert.Equal(t, want.Hour, got.Hour)
		assert.Equal(t, want.Weekday, got.Weekday)
		assert.Equal(t, want.MonthNum, got.MonthNum)
		assert.Equal(t, want.MonthName, got.MonthName)
		assert.Equal(t, want.ISOWeek, got.ISOWeek)
		assertTimeEqual(t, want.Date, got.Date)
		assert.Equal(t, want.RevenueThousands, got.RevenueThousands)
	}

	assert.Equal(t, original.Stations(), restored.Stations())
	assert.Equal(t, original.Months(), restored.Months())
}

func TestSnapshotIsTextualWithISODates(t *testing.T) {
	sessions, _, err := ingest.Load(strings.NewReader(snapshotCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(New(sessions), &buf))

	text := buf.String()
	assert.Contains(t, text, `"version":1`)
	assert.Contains(t, text, "2025-03-10T08:15:00Z")
	assert.Contains(t, text, `"date":"2025-03-10"`)
}

func TestDecodeSnapshot_RejectsUnknownVersion(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(`{"version":99,"sessions":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestDecodeSnapshot_RejectsMalformedPayload(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func assertTimeEqual(t *testing.T, want, got *time.Time) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got), "want %v, got %v", want, got)
}
