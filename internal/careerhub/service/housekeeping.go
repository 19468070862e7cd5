package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
)

const (
	// DefaultHousekeepingInterval applies when no interval is configured.
	DefaultHousekeepingInterval = 15 * time.Minute

	// DefaultOTPRetention is how long an expired code stays on the user row.
	DefaultOTPRetention = 24 * time.Hour
)

// HousekeepingService clears long-expired WhatsApp codes so stale hashes do
// not linger on user rows. A code is kept for Retention after it expires so
// late submissions are still answered as expired rather than as never
// requested.
type HousekeepingService struct {
	Store     *store.Handle
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time
}

func NewHousekeepingService(st *store.Handle, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if retention <= 0 {
		retention = DefaultOTPRetention
	}
	return &HousekeepingService{Store: st, Logger: logger, Interval: interval, Retention: retention, Now: time.Now}
}

// Run sweeps once per Interval until ctx is cancelled. The first sweep waits
// a full interval so startup does not force the database open.
func (s *HousekeepingService) Run(ctx context.Context) error {
	s.Logger.Info("housekeeping started", "interval", s.Interval)
	defer s.Logger.Info("housekeeping stopped")

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Cleanup(ctx)
		}
	}
}

// Cleanup runs one pass and returns the number of codes cleared that expired
// more than Retention ago. Failures are
// logged and retried on the next tick.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	st, err := s.Store.Get(ctx)
	if err != nil {
		s.Logger.Error("housekeeping skipped, store unavailable", "error", err)
		return 0
	}

	n, err := st.Users().DeleteExpiredOTPChallenges(ctx, s.Now().Add(-s.Retention))
	if err != nil {
		s.Logger.Error("failed to clear expired OTP challenges", "error", err)
		return 0
	}
	if n > 0 {
		s.Logger.Info("expired OTP challenges cleared", "count", n)
	}
	return n
}
