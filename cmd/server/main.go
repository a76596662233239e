// Command server runs the logs dashboard HTTP API.
//
// Configuration comes from a YAML file (CONFIG_PATH) with environment
// variable overrides; see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Atik203/Logs-Dashboard/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
