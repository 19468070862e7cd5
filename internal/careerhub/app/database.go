package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/postgres"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/sqlite"
)

// IsPostgresURL reports whether url selects the Postgres driver.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// NewOpener returns a store.Opener for url. The opener connects and applies
// migrations; the store is closed again if migrations fail.
func NewOpener(url string, logger *slog.Logger) store.Opener {
	return func(ctx context.Context) (store.Store, error) {
		var (
			st     store.Store
			driver string
			err    error
		)

		if IsPostgresURL(url) {
			driver = "postgres"
			st, err = postgres.NewStore(ctx, url, postgres.PoolConfig{})
		} else {
			driver = "sqlite"
			dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", url)
			st, err = sqlite.NewStore(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
		}

		if err := st.ApplyMigrations(); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to apply database migrations: %w", err)
		}

		logger.Info("database ready", "driver", driver)
		return st, nil
	}
}
