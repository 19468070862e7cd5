package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/jwtx"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")

// InitSessionKeys builds the HS256 signer and verifier for session tokens.
//
// Outside production a missing secret is replaced by a random one. Tokens
// signed with it stop verifying when the process restarts.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, *jwtx.HS256Verifier, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.Production() {
			return nil, nil, ErrMissingJWTSecret
		}

		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = generated
		logger.Warn("JWT_SECRET not set, using an ephemeral secret; sessions end on restart")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return nil, nil, err
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(secret), 0)
	if err != nil {
		return nil, nil, err
	}
	return signer, verifier, nil
}
