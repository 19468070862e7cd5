package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/notify"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/sqlite"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/jwtx"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "careerhub-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	code := m.Run()
	os.Remove(pepperPath)

	os.Exit(code)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	handle   *store.Handle
	clock    *clock
	notifier *notify.Recorder
	verifier jwtx.Verifier

	auth  *AuthService
	totp  *TOTPService
	otp   *OTPService
	users *UserService
	tasks *TaskService
	boot  *BootstrapService
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	handle := store.Ready(st)
	t.Cleanup(func() { _ = handle.Close() })

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), 0)
	require.NoError(t, err)

	clk := &clock{now: time.Now().UTC().Truncate(time.Second)}
	rec := &notify.Recorder{}

	tokens := &TokenIssuer{Signer: signer, TTL: jwtx.DefaultSessionTTL, Now: clk.Now}
	totpSvc := &TOTPService{Store: handle, Issuer: "CareerHub", Now: clk.Now}
	otpSvc := &OTPService{Store: handle, Notifier: rec, Now: clk.Now}

	return &testEnv{
		handle:   handle,
		clock:    clk,
		notifier: rec,
		verifier: verifier,
		auth:     &AuthService{Store: handle, Tokens: tokens, TOTP: totpSvc, OTP: otpSvc, Now: clk.Now},
		totp:     totpSvc,
		otp:      otpSvc,
		users:    &UserService{Store: handle, Now: clk.Now},
		tasks:    &TaskService{Store: handle, Now: clk.Now},
		boot:     &BootstrapService{Store: handle, Now: clk.Now},
	}
}

func (e *testEnv) register(t *testing.T, email, phone string) domain.User {
	t.Helper()
	issued, err := e.auth.Register(context.Background(), RegisterInput{
		FullName:    "User " + email,
		Email:       email,
		PhoneNumber: phone,
		Password:    "p1-secret",
	})
	require.NoError(t, err)
	return issued.User
}

func (e *testEnv) seedAdmin(t *testing.T) domain.User {
	t.Helper()
	ctx := context.Background()
	_, err := e.boot.SeedAdmin(ctx, AdminSeed{Email: "sarman@gmail.com", Password: "admin1234"})
	require.NoError(t, err)

	st, err := e.handle.Get(ctx)
	require.NoError(t, err)
	u, err := st.Users().GetUserByEmail(ctx, "sarman@gmail.com")
	require.NoError(t, err)
	return u
}

func (e *testEnv) user(t *testing.T, id string) domain.User {
	t.Helper()
	u, err := e.users.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
