package hubsdk

import (
	"context"
	"sync"
)

// Session is an authenticated client. Tokens are not refreshed; a new login
// is needed once one expires.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
}

// Token returns the session token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken swaps the token, for example after a new login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) call(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	return s.client.call(ctx, method, path, s.Token(), body, target, expectedStatus)
}
