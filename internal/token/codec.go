// Package token signs and verifies the bearer credentials issued at login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/brawlops/brawlsquad/internal/dependencies/clock"
)

// Errors
var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token is expired")
)

// Claims are the verified contents of a bearer token
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec issues and verifies HMAC-signed bearer tokens. The secret is
// loaded once at startup and never changes for the process lifetime;
// rotating it invalidates every previously issued token.
type Codec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewCodec creates a Codec bound to a signing secret and token lifetime
func NewCodec(secret []byte, ttl time.Duration, clk clock.Clock) *Codec {
	return &Codec{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}
}

// TTL returns the lifetime applied to issued tokens
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token for the given subject, expiring after
// the codec's TTL. A unique token ID is included so two tokens issued
// for the same subject in the same instant still differ.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.clock.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the token's signature and expiry and returns its claims.
// Failures map to ErrMalformed, ErrBadSignature, or ErrExpired.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	out := Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
