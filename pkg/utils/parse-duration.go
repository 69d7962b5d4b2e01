package utils

import (
	"fmt"
	"log/slog"
	"time"
)

func ParseDurationString(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid time duration '%s' : %s", value, err.Error())
	}
	return d, nil
}

// ParseDurationStringWithDefault falls back to the given default when value is
// empty or not a valid duration string.
func ParseDurationStringWithDefault(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := ParseDurationString(value)
	if err != nil {
		slog.Warn("failed to parse duration, using default", slog.String("value", value), slog.String("default", fallback.String()))
		return fallback
	}
	return d
}
