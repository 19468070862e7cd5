package domain

import "time"

const (
	// OTPTTL is how long an issued WhatsApp code stays valid.
	OTPTTL = 5 * time.Minute

	// OTPMaxAttempts is the number of failed verifications after which a new
	// code must be requested.
	OTPMaxAttempts = 5
)

// OTPChallenge is an outstanding out-of-band code. Present means not yet
// consumed; it is cleared on successful verification.
type OTPChallenge struct {
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
}

// Expired reports whether now is past the expiry instant.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Exhausted reports whether the attempt budget is spent.
func (c *OTPChallenge) Exhausted(max int) bool {
	return c.Attempts >= max
}
