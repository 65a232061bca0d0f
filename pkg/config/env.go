// Package config reads process configuration from environment variables.
//
// Every getter is warn-and-default: a missing variable silently yields the
// default, a malformed one yields the default and a warning on the default
// logger. Callers validate ranges themselves with the Validate helpers.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the variable or defaultValue when it is unset or empty.
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses the variable as a base-10 integer.
//
//	size := GetEnvInt("PAGINATION_PAGE_SIZE", 10)
func GetEnvInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi)
}

// GetEnvBool parses the variable with strconv.ParseBool ("1", "t", "true", "0", "f", "false" and their capitalizations).
//
//	secure := GetEnvBool("COOKIE_SECURE", true)
func GetEnvBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvFloat parses the variable as a 64-bit float.
func GetEnvFloat(key string, defaultValue float64) float64 {
	return parseEnv(key, defaultValue, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

// GetEnvDuration parses the variable with time.ParseDuration.
//
//	timeout := GetEnvDuration("MUTATION_TIMEOUT", 10*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, time.ParseDuration)
}

// GetEnvStringList splits a comma-separated variable, trimming entries and
// dropping empty ones. A variable with no entries yields defaultValue.
//
//	// TRUSTED_PROXIES="10.0.0.0/8, 172.16.0.0/12"
//	proxies := GetEnvStringList("TRUSTED_PROXIES", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func parseEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		slog.Warn("invalid environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}
