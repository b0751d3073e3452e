// Package tokenx reads the claims carried by the bearer credential.
//
// The client never holds the signing key, so claims are decoded without
// signature verification and are only used for display and diagnostics.
// The backend remains the sole judge of whether a token is valid.
package tokenx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// Claims is the subset of registered JWT claims the client cares about.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an "exp" claim.
func (c Claims) HasExpiry() bool {
	return !c.ExpiresAt.IsZero()
}

// Expired reports whether the token's expiry is at or before now. Tokens
// without an expiry never expire locally.
func (c Claims) Expired(now time.Time) bool {
	return c.HasExpiry() && !now.Before(c.ExpiresAt)
}

// Inspect decodes token's payload without verifying its signature.
func Inspect(token string) (Claims, error) {
	var rc jwt.RegisteredClaims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
