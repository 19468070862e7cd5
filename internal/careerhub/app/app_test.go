package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
		require.Equal(t, 24*time.Hour, cfg.OTPRetention)
		require.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
		require.Equal(t, "CareerHub", cfg.TOTPIssuer)
		require.Equal(t, "careerhub.db", cfg.DatabaseURL)
		require.False(t, cfg.Production())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "Production")
		t.Setenv("PORT", "9090")
		t.Setenv("HOUSEKEEPING_INTERVAL", "5")
		t.Setenv("OTP_RETENTION", "48h")
		t.Setenv("TOKEN_TTL", "1h")
		t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
		t.Setenv("TWILIO_AUTH_TOKEN", "token")
		t.Setenv("TWILIO_WHATSAPP_NUMBER", "+14155238886")

		cfg := LoadConfig()
		require.True(t, cfg.Production())
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
		require.Equal(t, 48*time.Hour, cfg.OTPRetention)
		require.Equal(t, time.Hour, cfg.TokenTTL)
		require.True(t, cfg.Twilio.Configured())
	})

	t.Run("bad values fall back", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

		cfg := LoadConfig()
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})
}

func TestInitSessionKeys(t *testing.T) {
	t.Run("generates a secret outside production", func(t *testing.T) {
		signer, verifier, err := InitSessionKeys(Config{Env: "dev"}, discardLogger())
		require.NoError(t, err)
		require.NotNil(t, signer)
		require.NotNil(t, verifier)
	})

	t.Run("production requires a secret", func(t *testing.T) {
		_, _, err := InitSessionKeys(Config{Env: "prod"}, discardLogger())
		require.ErrorIs(t, err, ErrMissingJWTSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		_, _, err := InitSessionKeys(Config{Env: "prod", JWTSecret: "short"}, discardLogger())
		require.Error(t, err)
	})
}

func TestIsPostgresURL(t *testing.T) {
	require.True(t, IsPostgresURL("postgres://u:p@localhost:5432/careerhub"))
	require.True(t, IsPostgresURL("postgresql://localhost/careerhub"))
	require.False(t, IsPostgresURL("careerhub.db"))
	require.False(t, IsPostgresURL("/var/lib/careerhub/data.db"))
}

func TestOpenerMigratesSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careerhub.db")
	h := store.NewHandle(NewOpener(path, discardLogger()))
	t.Cleanup(func() { _ = h.Close() })

	st, err := h.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, st.Ping(context.Background()))

	counts, err := st.Users().CountUsers(context.Background())
	require.NoError(t, err)
	require.Zero(t, counts.Total)
}

func TestApplication(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
		DatabaseURL:         filepath.Join(dir, "careerhub.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		TokenTTL:            time.Hour,
		TOTPIssuer:          "CareerHub",
	}
	cfg.Admin.Email = "sarman@gmail.com"
	cfg.Admin.Password = "admin1234"

	application, err := New(cfg)
	require.NoError(t, err)
	require.False(t, application.db.Opened())

	require.NoError(t, application.seedAdmin(context.Background()))
	require.True(t, application.db.Opened())

	// Seeding twice is a no-op.
	require.NoError(t, application.seedAdmin(context.Background()))

	w := httptest.NewRecorder()
	application.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	counts, err := application.userService.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), counts.Total)

	require.NoError(t, application.db.Close())
}

func TestRunStopsWhenCancelled(t *testing.T) {
	dir := t.TempDir()
	application, err := New(Config{
		Env:                 "test",
		LogLevel:            "error",
		Port:                0,
		ShutdownGracePeriod: time.Second,
		DatabaseURL:         filepath.Join(dir, "careerhub.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		TokenTTL:            time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.False(t, application.db.Opened(), "nothing needed the database")
}
