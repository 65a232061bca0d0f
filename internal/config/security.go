// Package config loads the YAML security configuration: how admin sessions
// are encoded, how long they live and how hard login is throttled.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Session token formats.
const (
	SessionFormatJWT          = "jwt"
	SessionFormatSecureCookie = "securecookie"
)

// SecurityConfig represents security configuration.
type SecurityConfig struct {
	Security struct {
		Session struct {
			Format       string `yaml:"format"`
			SecretEnv    string `yaml:"secret_env"`
			TTLHours     int    `yaml:"ttl_hours"`
			CookieSecure bool   `yaml:"cookie_secure"`
		} `yaml:"session"`
		Login struct {
			RatePerMinute int `yaml:"rate_per_minute"`
			Burst         int `yaml:"burst"`
		} `yaml:"login"`
		Admin struct {
			MinPasswordLength int      `yaml:"min_password_length"`
			WeakPasswords     []string `yaml:"weak_passwords"`
		} `yaml:"admin"`
	} `yaml:"security"`
}

// DefaultSecurityConfig is used when no file is configured: JWT sessions
// signed with SESSION_SECRET that last one week.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.Session.Format = SessionFormatJWT
	c.Security.Session.SecretEnv = "SESSION_SECRET"
	c.Security.Session.TTLHours = 24 * 7
	c.Security.Login.RatePerMinute = 5
	c.Security.Login.Burst = 5
	c.Security.Admin.MinPasswordLength = 12
	return &c
}

// LoadSecurityConfig loads security configuration from YAML file.
// Keys missing from the file keep their defaults.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultSecurityConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// LoadSecurityConfigOrDefault behaves like LoadSecurityConfig but returns
// the defaults when path is empty or the file does not exist.
func LoadSecurityConfigOrDefault(path string) (*SecurityConfig, error) {
	if path == "" {
		return DefaultSecurityConfig(), nil
	}
	cfg, err := LoadSecurityConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSecurityConfig(), nil
	}
	return cfg, err
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	s := config.Security

	switch s.Session.Format {
	case SessionFormatJWT, SessionFormatSecureCookie:
	default:
		return fmt.Errorf("session format must be %q or %q, got %q", SessionFormatJWT, SessionFormatSecureCookie, s.Session.Format)
	}

	if s.Session.SecretEnv == "" {
		return fmt.Errorf("session secret_env is required")
	}

	if s.Session.TTLHours <= 0 {
		return fmt.Errorf("session ttl_hours must be positive")
	}

	if s.Login.RatePerMinute <= 0 || s.Login.Burst <= 0 {
		return fmt.Errorf("login rate_per_minute and burst must be positive")
	}

	if s.Admin.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8")
	}

	return nil
}

// SessionFormat returns the configured token format.
func (c *SecurityConfig) SessionFormat() string {
	return c.Security.Session.Format
}

// SessionSecretEnv returns the environment variable holding the signing secret.
func (c *SecurityConfig) SessionSecretEnv() string {
	return c.Security.Session.SecretEnv
}

// SessionTTL returns how long an issued session stays valid.
func (c *SecurityConfig) SessionTTL() time.Duration {
	return time.Duration(c.Security.Session.TTLHours) * time.Hour
}

// CookieSecure reports whether the session cookie is marked Secure.
// SESSION_COOKIE_SECURE=true forces it on.
func (c *SecurityConfig) CookieSecure() bool {
	return c.Security.Session.CookieSecure || os.Getenv("SESSION_COOKIE_SECURE") == "true"
}

// LoginRate returns the sustained login rate per client and the burst size.
func (c *SecurityConfig) LoginRate() (perMinute, burst int) {
	return c.Security.Login.RatePerMinute, c.Security.Login.Burst
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Admin.MinPasswordLength
}

// GetWeakPasswords returns the list of weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Admin.WeakPasswords
}
