// Command seed-admin creates the CareerHub admin account if it does not exist.
package main

import (
	"context"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/app"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

type config struct {
	DatabaseURL string `env:"DATABASE_URL" env-default:"careerhub.db" env-description:"postgres:// URL or SQLite file path"`
	PepperFile  string `env:"PASSWORD_PEPPER_FILE" env-default:"pepper" env-description:"password pepper file, shared with the server"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	Email    string `env:"SEED_ADMIN_EMAIL" env-default:"sarman@gmail.com"`
	Password string `env:"SEED_ADMIN_PASSWORD" env-default:"admin1234"`
	FullName string `env:"SEED_ADMIN_NAME" env-default:"System Admin"`
}

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		help, _ := cleanenv.GetDescription(&cfg, nil)
		log.Fatalf("invalid configuration: %v\n%s", err, help)
	}

	logger := slogx.New(slogx.Config{
		Service: "careerhub-seed-admin",
		Version: app.BuildVersion,
		Level:   cfg.LogLevel,
		Format:  "text",
	})
	cryptox.SetPepperPath(cfg.PepperFile)

	db := store.NewHandle(app.NewOpener(cfg.DatabaseURL, logger))
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(slogx.WithContext(context.Background(), logger), time.Minute)
	defer cancel()

	boot := &service.BootstrapService{Store: db}
	created, err := boot.SeedAdmin(ctx, service.AdminSeed{
		Email:    cfg.Email,
		Password: cfg.Password,
		FullName: cfg.FullName,
	})
	if err != nil {
		logger.Error("failed to seed admin", "error", err)
		_ = db.Close()
		log.Fatal("seed-admin failed")
	}

	logger.Info("seed-admin finished", "created", created)
}
