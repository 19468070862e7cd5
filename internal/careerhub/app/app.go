package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	httpapi "github.com/aussiebroadwan/careerhub/internal/careerhub/http"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/notify"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/jwtx"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// BuildVersion is stamped by the Dockerfile with
// -X github.com/aussiebroadwan/careerhub/internal/careerhub/app.BuildVersion=<tag>.
var BuildVersion = "v0.1.0-dev"

// Application owns the CareerHub process: configuration, the lazily opened
// store, the services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *store.Handle
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	notifier notify.Notifier

	authService         *service.AuthService
	totpService         *service.TOTPService
	otpService          *service.OTPService
	userService         *service.UserService
	taskService         *service.TaskService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New wires every dependency without touching the database; the store opens
// on the first request, housekeeping pass or admin seed.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "careerhub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}
	cryptox.SetPepperPath(app.cfg.PepperFile)

	signer, verifier, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.signer = signer
	app.verifier = verifier

	app.db = store.NewHandle(NewOpener(app.cfg.DatabaseURL, app.logger))

	app.notifier = notify.New(app.cfg.Twilio)
	if !app.cfg.Twilio.Configured() {
		app.logger.Warn("twilio credentials not set, WhatsApp codes will not be delivered")
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run seeds the admin account, then serves HTTP and runs housekeeping until
// ctx is cancelled or the listener fails. In-flight requests get
// ShutdownGracePeriod to finish.
func (app *Application) Run(ctx context.Context) error {
	if err := app.seedAdmin(ctx); err != nil {
		return err
	}

	app.logger.Info("careerhub starting", "port", app.cfg.Port, "version", BuildVersion, "production", app.cfg.Production())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := app.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return app.housekeepingService.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.shutdownServer()
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error("error closing database", "error", cerr)
		err = errors.Join(err, cerr)
	}
	app.logger.Info("careerhub stopped")
	return err
}

func (app *Application) shutdownServer() error {
	app.logger.Info("shutting down careerhub", "grace_period", app.cfg.ShutdownGracePeriod)

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful shutdown timed out, closing connections", "error", err)
		return errors.Join(err, app.server.Close())
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// seedAdmin creates the configured admin account. A no-op when no admin is
// configured or the account already exists.
func (app *Application) seedAdmin(ctx context.Context) error {
	if app.cfg.Admin.Email == "" || app.cfg.Admin.Password == "" {
		return nil
	}

	ctx = slogx.WithContext(ctx, app.logger)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := app.bootstrapService.SeedAdmin(ctx, app.cfg.Admin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	return nil
}

func (app *Application) initServices() {
	tokens := &service.TokenIssuer{
		Signer: app.signer,
		TTL:    app.cfg.TokenTTL,
	}

	app.totpService = &service.TOTPService{
		Store:  app.db,
		Issuer: app.cfg.TOTPIssuer,
	}
	app.otpService = &service.OTPService{
		Store:    app.db,
		Notifier: app.notifier,
		Debug:    !app.cfg.Production(),
	}
	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: tokens,
		TOTP:   app.totpService,
		OTP:    app.otpService,
	}
	app.userService = &service.UserService{Store: app.db}
	app.taskService = &service.TaskService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.OTPRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.cfg.Production(),
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.TOTPService = app.totpService
	router.OTPService = app.otpService
	router.UserService = app.userService
	router.TaskService = app.taskService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
