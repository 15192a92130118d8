// Command server runs the HTTP API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) with
// environment variable overrides. SIGINT/SIGTERM trigger graceful shutdown.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/mozuk/mozuk-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
