// Package auth holds the framework-agnostic session contracts: who may log
// in, how a session is turned into a token and how a token is checked.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RoleAdmin is the only role that passes the session gate.
const RoleAdmin = "admin"

var (
	// ErrInvalidCredentials is returned for any login failure, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession is returned by verifiers for missing, forged or expired tokens.
	ErrInvalidSession = errors.New("invalid session")
)

// Credentials represents authentication credentials.
type Credentials struct {
	Email    string
	Password string
}

// Session is what a valid token proves.
type Session struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// IsAdmin reports whether the session may use admin routes.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// AuthProvider defines the interface for authentication providers.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error
	// IdentifyUser returns the role of an already validated user.
	IdentifyUser(ctx context.Context, email string) (string, error)
	// Name returns the name of this provider.
	Name() string
}

// Issuer turns a session into an opaque token.
type Issuer interface {
	Issue(s Session) (string, error)
}

// Verifier checks a token. Any failure wraps ErrInvalidSession.
type Verifier interface {
	Verify(ctx context.Context, token string) (Session, error)
}

// Codec both issues and verifies tokens of one format.
type Codec interface {
	Issuer
	Verifier
}

// AuthService handles authentication business logic.
// This service is framework-agnostic and can be used with any HTTP framework or CLI.
type AuthService struct {
	provider AuthProvider
	issuer   Issuer
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider, issuer Issuer, ttl time.Duration) *AuthService {
	return &AuthService{
		provider: provider,
		issuer:   issuer,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login validates creds and issues a session token valid for the configured TTL.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (string, Session, error) {
	if err := s.provider.ValidateCredentials(ctx, creds); err != nil {
		return "", Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	role, err := s.provider.IdentifyUser(ctx, creds.Email)
	if err != nil {
		return "", Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	sess := Session{
		Subject:   creds.Email,
		Role:      role,
		ExpiresAt: s.now().Add(s.ttl),
	}
	token, err := s.issuer.Issue(sess)
	if err != nil {
		return "", Session{}, fmt.Errorf("issue session: %w", err)
	}
	return token, sess, nil
}

// TTL returns how long issued sessions last.
func (s *AuthService) TTL() time.Duration { return s.ttl }

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
