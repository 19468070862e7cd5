package service

import (
	"strings"
	"sync"

	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is verified against when the email is unknown so both
// login failures cost the same.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("careerhub-unknown-user")
	})
	return dummyHash
}

// normalizeLogin folds the email without validating it; a malformed address
// is simply an unknown account.
func normalizeLogin(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
