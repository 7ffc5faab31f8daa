package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		loc   *time.Location
		want  string
	}{
		{"empty", "", time.UTC, Placeholder},
		{"blank", "   ", time.UTC, Placeholder},
		{"utc morning", "2024-01-01T09:00:00Z", time.UTC, "09:00 AM"},
		{"utc afternoon", "2024-01-01T15:45:00Z", time.UTC, "03:45 PM"},
		{"converted to display zone", "2024-01-01T15:00:00Z", ny, "10:00 AM"},
		{"naive read in display zone", "2024-01-01T09:30:00", ny, "09:30 AM"},
		{"offset without seconds", "2024-01-01T09:30+02:00", time.UTC, "07:30 AM"},
		{"unparsable returned as is", "tomorrow-ish", time.UTC, "tomorrow-ish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatTime(tt.value, tt.loc))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"half hour", "2024-01-01T09:00:00Z", "2024-01-01T09:30:00Z", 30},
		{"rounds to nearest minute", "2024-01-01T09:00:00Z", "2024-01-01T09:10:40Z", 11},
		{"across midnight", "2024-01-01T23:30:00Z", "2024-01-02T00:15:00Z", 45},
		{"reversed", "2024-01-01T10:00:00Z", "2024-01-01T09:00:00Z", 0},
		{"equal", "2024-01-01T10:00:00Z", "2024-01-01T10:00:00Z", 0},
		{"missing start", "", "2024-01-01T09:00:00Z", 0},
		{"missing end", "2024-01-01T09:00:00Z", "", 0},
		{"unparsable", "soon", "later", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Duration(tt.start, tt.end, time.UTC)
			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestParseTimestampNilLocationUsesLocal(t *testing.T) {
	got, ok := ParseTimestamp("2024-01-01T09:00", nil)
	require.True(t, ok)
	require.Equal(t, time.Local, got.Location())
}
