package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Same grammar cron.New uses: five fields, "@hourly", "@every 5m" and so on.
var cronSpec = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

var errEmpty = errors.New("must not be empty")

// ValidateCronSchedule reports whether the stats job could be scheduled with s.
func ValidateCronSchedule(s string) error {
	if s == "" {
		return fmt.Errorf("cron schedule: %w", errEmpty)
	}
	if _, err := cronSpec.Parse(s); err != nil {
		return fmt.Errorf("cron schedule %q: %w", s, err)
	}
	return nil
}

// ValidateTimezone reports whether name loads as an IANA location.
func ValidateTimezone(name string) error {
	if name == "" {
		return fmt.Errorf("timezone: %w", errEmpty)
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("timezone %q: %w", name, err)
	}
	return nil
}
