package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a CareerHub session token.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims are the session token claims: sub, role, iat and exp. The role is a
// snapshot taken at login; the access gate re-reads the live role per request.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

// NewSessionClaims builds the claim set for a token issued at now.
func NewSessionClaims(subject, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}

// Validate is called by the jwt parser after the registered claims pass.
func (c Claims) Validate() error {
	if c.Subject == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}
