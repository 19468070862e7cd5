package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/pkg/jwtx"
)

// TokenIssuer mints session tokens binding a user id and role.
type TokenIssuer struct {
	Signer jwtx.Signer
	TTL    time.Duration
	Now    func() time.Time
}

func (t *TokenIssuer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Issue signs a token for u. Verification is stateless; tokens stay valid
// until they expire or the secret changes.
func (t *TokenIssuer) Issue(u domain.User) (string, error) {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(u.ID, string(u.Role), ttl, t.now())
	token, err := t.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
