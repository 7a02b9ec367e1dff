package helpers

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateTime accepts the loose date-time formats clients send
// ("2024-01-31", "2024-01-31T09:00:00Z", "Jan 31, 2024", "01/31/2024", ...)
// and normalizes the result to UTC. Values without a zone are read as UTC.
func ParseDateTime(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NowUTC returns the current time truncated to microseconds, the precision both
// supported stores keep.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
