package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// One-time code parameters. Codes are uniform over [100000, 999999].
const (
	otpCodeMin   = 100000
	otpCodeRange = 900000

	// OTPHashCost is the bcrypt cost used for stored one-time codes.
	OTPHashCost = bcrypt.DefaultCost
)

// ErrCodeMismatch is returned by VerifyCode when the code does not match.
var ErrCodeMismatch = errors.New("code does not match")

// GenerateNumericCode returns a random 6 digit code with no leading zero.
func GenerateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+otpCodeMin), nil
}

// HashCode salts and hashes a one-time code for storage.
func HashCode(code string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(code), OTPHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(h), nil
}

// VerifyCode compares a submitted code against its stored hash.
func VerifyCode(code, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrCodeMismatch
	}
	return err
}
