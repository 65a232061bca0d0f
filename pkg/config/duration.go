package config

import (
	"fmt"
	"log/slog"
	"time"
)

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange checks lo <= d <= hi.
func ValidateDurationRange(d, lo, hi time.Duration) error {
	switch {
	case lo > hi:
		return fmt.Errorf("empty range [%v, %v]", lo, hi)
	case d < lo || d > hi:
		return fmt.Errorf("duration %v outside [%v, %v]", d, lo, hi)
	}
	return nil
}

// GetEnvDurationIn is GetEnvDuration plus a range check. Values outside
// [lo, hi] fall back to defaultValue with a warning.
//
//	timeout := GetEnvDurationIn("REVALIDATE_WEBHOOK_TIMEOUT", 5*time.Second, time.Second, time.Minute)
func GetEnvDurationIn(key string, defaultValue, lo, hi time.Duration) time.Duration {
	d := GetEnvDuration(key, defaultValue)
	if err := ValidateDurationRange(d, lo, hi); err != nil {
		slog.Warn("environment variable out of range, using default",
			slog.String("key", key),
			slog.Duration("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return d
}
