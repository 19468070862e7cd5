package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("careerhub: %v", err)
	}
	if err := application.Run(ctx); err != nil {
		log.Fatalf("careerhub: %v", err)
	}
}
