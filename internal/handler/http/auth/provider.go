package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authservice "newsdesk/internal/service/auth"
)

var errUnknownUser = errors.New("unknown user")

// AdminProvider authenticates the single administrator configured through
// ADMIN_USER and either ADMIN_USER_PASSWORD_HASH (bcrypt) or ADMIN_USER_PASSWORD.
type AdminProvider struct {
	user         string
	password     string
	passwordHash []byte
}

// NewAdminProvider reads the admin credentials from the environment.
func NewAdminProvider() *AdminProvider {
	return NewStaticAdminProvider(
		os.Getenv("ADMIN_USER"),
		os.Getenv("ADMIN_USER_PASSWORD"),
		os.Getenv("ADMIN_USER_PASSWORD_HASH"),
	)
}

// NewStaticAdminProvider builds a provider from explicit values. A non-empty
// hash takes precedence over the plain password.
func NewStaticAdminProvider(user, password, hash string) *AdminProvider {
	p := &AdminProvider{user: strings.TrimSpace(user)}
	if hash != "" {
		p.passwordHash = []byte(hash)
	} else {
		p.password = password
	}
	return p
}

// ValidateCredentials compares creds against the configured admin.
// Both comparisons always run so that timing does not reveal which one failed.
func (p *AdminProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}
	if p.user == "" {
		return fmt.Errorf("admin user is not configured")
	}

	userMatch := subtle.ConstantTimeCompare([]byte(strings.ToLower(creds.Email)), []byte(strings.ToLower(p.user))) == 1

	var passMatch bool
	if len(p.passwordHash) > 0 {
		passMatch = bcrypt.CompareHashAndPassword(p.passwordHash, []byte(creds.Password)) == nil
	} else {
		passMatch = subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.password)) == 1
	}

	if !userMatch || !passMatch {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// IdentifyUser returns RoleAdmin for the configured admin.
func (p *AdminProvider) IdentifyUser(_ context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(p.user))) != 1 {
		return "", errUnknownUser
	}
	return authservice.RoleAdmin, nil
}

func (p *AdminProvider) Name() string { return "admin-env" }
