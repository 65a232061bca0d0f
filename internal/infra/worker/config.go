// Package worker runs the periodic background jobs of the API process.
//
// The only job today refreshes the content gauges (articles_total,
// categories_total) and the connection pool gauges on a cron schedule.
package worker

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	pkgconfig "newsdesk/pkg/config"
)

// Config controls when and how long the stats job runs.
type Config struct {
	// Schedule is a five-field cron expression or a descriptor such as "@every 1m".
	Schedule string
	// Timezone is the IANA location the schedule is evaluated in.
	Timezone string
	// Timeout bounds a single run, 1s to 5m.
	Timeout time.Duration
}

// DefaultConfig refreshes once a minute.
func DefaultConfig() Config {
	return Config{
		Schedule: "@every 1m",
		Timezone: "UTC",
		Timeout:  30 * time.Second,
	}
}

// Validate collects every invalid field into one error.
func (c Config) Validate() error {
	var errs []error
	if err := pkgconfig.ValidateCronSchedule(c.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	}
	if err := pkgconfig.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := validateTimeout(c.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

func validateTimeout(d time.Duration) error {
	return pkgconfig.ValidateDurationRange(d, time.Second, 5*time.Minute)
}

// LoadConfigFromEnv reads STATS_SCHEDULE, STATS_TIMEZONE and STATS_TIMEOUT.
// It never fails: an invalid value is replaced by its default, logged, and
// counted in config_fallbacks_total.
func LoadConfigFromEnv(logger *slog.Logger) Config {
	cfg := DefaultConfig()

	cfg.Schedule = fallback(logger, "STATS_SCHEDULE", pkgconfig.GetEnvString("STATS_SCHEDULE", cfg.Schedule), cfg.Schedule, pkgconfig.ValidateCronSchedule)
	cfg.Timezone = fallback(logger, "STATS_TIMEZONE", pkgconfig.GetEnvString("STATS_TIMEZONE", cfg.Timezone), cfg.Timezone, pkgconfig.ValidateTimezone)
	cfg.Timeout = fallback(logger, "STATS_TIMEOUT", pkgconfig.GetEnvDuration("STATS_TIMEOUT", cfg.Timeout), cfg.Timeout, validateTimeout)

	return cfg
}

func fallback[T any](logger *slog.Logger, key string, value, def T, validate func(T) error) T {
	if err := validate(value); err != nil {
		configFallbacks.WithLabelValues(key).Inc()
		logger.Warn("configuration fallback applied",
			slog.String("env_key", key),
			slog.String("invalid_value", os.Getenv(key)),
			slog.Any("default_value", def),
			slog.String("error", err.Error()))
		return def
	}
	return value
}
