package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnario/turnario-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestSerialize_HeaderAndBOM(t *testing.T) {
	out := string(Serialize(nil, time.Now()))

	assert.True(t, strings.HasPrefix(out, "\ufeff"))
	assert.Equal(t,
		"Data,Evento,Cliente,Brand,Indirizzo,Orario Programmato,Check-in,Coordinate Check-in,Check-out,Coordinate Check-out,Ore Lavorate,Stato,Note",
		strings.TrimSuffix(strings.TrimPrefix(out, "\ufeff"), "\n"))
}

func TestSerialize_CompletedRecord(t *testing.T) {
	shiftDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 12, 8, 58, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 17, 3, 0, 0, time.UTC)

	records := []attendance.Checkin{{
		ShiftDate:        &shiftDate,
		EventTitle:       strPtr("Fiera del Mobile"),
		ClientName:       strPtr("Sicurezza SRL"),
		BrandName:        strPtr("Brand A"),
		EventAddress:     strPtr("Via Roma 1, Milano"),
		StartTime:        strPtr("09:00"),
		EndTime:          strPtr("17:00"),
		CheckIn:          &checkIn,
		CheckOut:         &checkOut,
		CheckInLatitude:  floatPtr(45.4642),
		CheckInLongitude: floatPtr(9.19),
		Notes:            strPtr("tutto ok"),
	}}

	out := string(Serialize(records, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		`12/03/2026,Fiera del Mobile,Sicurezza SRL,Brand A,"Via Roma 1, Milano",09:00 - 17:00,12/03/2026 08:58,"45.4642, 9.19",12/03/2026 17:03,-,8h5m,completed,tutto ok`,
		lines[1])
}

func TestSerialize_MissingValuesRenderDash(t *testing.T) {
	shiftDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	records := []attendance.Checkin{{ShiftDate: &shiftDate}}

	out := string(Serialize(records, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// Shift in the past with no punches derives as missed
	assert.Equal(t, "12/03/2026,-,-,-,-,-,-,-,-,-,-,missed,-", lines[1])
}

func TestSerialize_OpenPunchPairIsInProgress(t *testing.T) {
	shiftDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	records := []attendance.Checkin{{
		ShiftDate: &shiftDate,
		CheckIn:   &checkIn,
	}}

	out := string(Serialize(records, time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[1], ",")
	assert.Equal(t, "-", fields[len(fields)-2-1], "worked hours stay open")
	assert.Equal(t, "in_progress", fields[len(fields)-2])
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain value untouched", "Via Roma 1", "Via Roma 1"},
		{"comma triggers quoting", "Via Roma 1, Milano", `"Via Roma 1, Milano"`},
		{"internal quotes doubled", `cliente "storico"`, `"cliente ""storico"""`},
		{"newline triggers quoting", "riga1\nriga2", "\"riga1\nriga2\""},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeField(tt.input))
		})
	}
}

func TestFilename(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"presenze_Mario_Rossi_01/03/2026_31/03/2026.csv",
		Filename("Mario Rossi", start, end))

	assert.Equal(t,
		"presenze_Anna_Maria_De_Luca_01/03/2026_31/03/2026.csv",
		Filename("Anna Maria De Luca", start, end))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "45.4642, 9.19", formatCoordinates(floatPtr(45.4642), floatPtr(9.19)))
	assert.Equal(t, "-", formatCoordinates(floatPtr(45.4642), nil))
	assert.Equal(t, "-", formatCoordinates(nil, nil))
}

func TestSerialize_WorkedHoursLabel(t *testing.T) {
	shiftDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	records := []attendance.Checkin{{
		ShiftDate: &shiftDate,
		CheckIn:   timePtr(time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)),
		CheckOut:  timePtr(time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)),
	}}

	out := string(Serialize(records, time.Now()))
	assert.Contains(t, out, ",0h30m,")
}
