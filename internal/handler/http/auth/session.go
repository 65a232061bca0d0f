// Package auth implements the admin session gate: token codecs, the
// session cookie, the gate middleware and the login/logout endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"

	cfg "newsdesk/internal/config"
	authservice "newsdesk/internal/service/auth"
)

// MinSecretLength is the shortest signing secret accepted at startup.
const MinSecretLength = 32

// ErrWeakSecret is returned when the signing secret is missing or too short.
var ErrWeakSecret = fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)

// NewCodec returns the codec for format ("jwt" or "securecookie").
func NewCodec(format string, secret []byte, ttl time.Duration) (authservice.Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	switch format {
	case cfg.SessionFormatJWT:
		return NewJWTCodec(secret), nil
	case cfg.SessionFormatSecureCookie:
		return NewCookieCodec(secret, ttl), nil
	default:
		return nil, fmt.Errorf("unknown session format %q", format)
	}
}

/* ───────────────────────────── JWT ───────────────────────────── */

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTCodec issues and verifies HS256 tokens carrying sub, role and exp.
type JWTCodec struct {
	secret []byte
	now    func() time.Time
}

func NewJWTCodec(secret []byte) *JWTCodec {
	return &JWTCodec{secret: secret, now: time.Now}
}

func (c *JWTCodec) Issue(s authservice.Session) (string, error) {
	claims := sessionClaims{
		Role: s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Subject,
			IssuedAt:  jwt.NewNumericDate(c.now()),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *JWTCodec) Verify(_ context.Context, token string) (authservice.Session, error) {
	if token == "" {
		return authservice.Session{}, fmt.Errorf("%w: empty token", authservice.ErrInvalidSession)
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return authservice.Session{}, fmt.Errorf("%w: %w", authservice.ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return authservice.Session{}, fmt.Errorf("%w: missing sub claim", authservice.ErrInvalidSession)
	}

	return authservice.Session{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

/* ───────────────────────── securecookie ───────────────────────── */

type cookiePayload struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	Exp  int64  `json:"exp"`
}

// CookieCodec stores the session as an HMAC-signed securecookie value.
type CookieCodec struct {
	sc  *securecookie.SecureCookie
	now func() time.Time
}

func NewCookieCodec(hashKey []byte, ttl time.Duration) *CookieCodec {
	sc := securecookie.New(hashKey, nil)
	sc.MaxAge(int(ttl.Seconds()))
	sc.SetSerializer(securecookie.JSONEncoder{})
	return &CookieCodec{sc: sc, now: time.Now}
}

func (c *CookieCodec) Issue(s authservice.Session) (string, error) {
	return c.sc.Encode(SessionCookieName, cookiePayload{
		Sub:  s.Subject,
		Role: s.Role,
		Exp:  s.ExpiresAt.Unix(),
	})
}

func (c *CookieCodec) Verify(_ context.Context, token string) (authservice.Session, error) {
	if token == "" {
		return authservice.Session{}, fmt.Errorf("%w: empty token", authservice.ErrInvalidSession)
	}

	var p cookiePayload
	if err := c.sc.Decode(SessionCookieName, token, &p); err != nil {
		return authservice.Session{}, fmt.Errorf("%w: %w", authservice.ErrInvalidSession, err)
	}
	if p.Sub == "" {
		return authservice.Session{}, fmt.Errorf("%w: missing subject", authservice.ErrInvalidSession)
	}
	exp := time.Unix(p.Exp, 0)
	if !c.now().Before(exp) {
		return authservice.Session{}, fmt.Errorf("%w: %w", authservice.ErrInvalidSession, errSessionExpired)
	}

	return authservice.Session{Subject: p.Sub, Role: p.Role, ExpiresAt: exp}, nil
}

var errSessionExpired = errors.New("session expired")
