// Package auth decodes bearer-token claims on the client side.
//
// Claims are extracted without verifying the signature: the backend
// re-verifies the token on every protected call, so the client-side decode
// is purely a UX optimization that avoids obviously-futile requests. It
// must never gate access to data the server does not also protect.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sunflowers/shopfront/internal/common"
)

// RegistrationGrace is how long past its embedded expiry a registration
// token is still accepted for completing the sign-up flow.
const RegistrationGrace = 2700 * time.Second

// now is a test seam.
var now = time.Now

// Claims is the subset of token claims the client cares about.
type Claims struct {
	// Subject is the account identifier, used as the user's email.
	Subject string
	// ExpiresAt is the token expiry.
	ExpiresAt time.Time
}

// Decode extracts subject and expiry from a bearer token without contacting
// any service and without signature verification. Malformed input or a
// token missing either claim yields common.ErrInvalidToken.
func Decode(raw string) (*Claims, error) {
	parser := jwt.NewParser()

	var rc jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(raw, &rc); err != nil {
		return nil, common.ErrInvalidToken
	}
	if rc.Subject == "" || rc.ExpiresAt == nil {
		return nil, common.ErrInvalidToken
	}

	return &Claims{Subject: rc.Subject, ExpiresAt: rc.ExpiresAt.Time}, nil
}

// IsExpired reports whether the token's embedded expiry has passed.
// Decode failure counts as expired.
func IsExpired(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return true
	}
	return claims.ExpiresAt.Before(now())
}

// IsRegistrationValid reports whether a registration token may still be
// used to complete sign-up: its expiry plus RegistrationGrace has not
// passed. Decode failure counts as invalid.
func IsRegistrationValid(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return false
	}
	return !claims.ExpiresAt.Add(RegistrationGrace).Before(now())
}

// Subject returns the token's subject claim, or "" if the token cannot be
// decoded.
func Subject(raw string) string {
	claims, err := Decode(raw)
	if err != nil {
		return ""
	}
	return claims.Subject
}
