// Command cleanup-tokens removes expired refresh tokens. Run it from cron;
// revoked tokens are left in place until their expiry passes so reuse
// detection keeps working.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/token"
	"github.com/Atik203/Logs-Dashboard/internal/app"
	"github.com/Atik203/Logs-Dashboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("delete expired tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expired refresh tokens removed", slog.Int64("deleted", deleted))
}
