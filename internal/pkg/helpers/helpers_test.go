package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2024-01-31", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-01-31T09:30:00Z", time.Date(2024, 1, 31, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2024-01-31T09:30:00+02:00", time.Date(2024, 1, 31, 7, 30, 0, 0, time.UTC)},
		{"space separated", "2024-01-31 09:30:00", time.Date(2024, 1, 31, 9, 30, 0, 0, time.UTC)},
		{"month name", "Jan 31, 2024", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"slashes", "01/31/2024", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	_, err := ParseDateTime("not a date")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Minute, ParseDuration("5m", time.Second))
	assert.Equal(t, time.Second, ParseDuration("soon", time.Second))
}

func TestNullConversions(t *testing.T) {
	assert.Nil(t, StringPtr(sql.NullString{}))
	s := "x"
	assert.Equal(t, &s, StringPtr(GetNullString(&s)))
	assert.False(t, GetNullString(nil).Valid)

	assert.Nil(t, TimePtr(sql.NullTime{}))
	local := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	got := TimePtr(GetNullTime(&local))
	require.NotNil(t, got)
	assert.True(t, local.Equal(*got))
	assert.Equal(t, time.UTC, got.Location())
}
