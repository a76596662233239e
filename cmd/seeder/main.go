// Command seeder populates the database with realistic demo log data.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--logs   number of log entries to generate (default: 500)
//	--seed   RNG seed for reproducible runs (default: current time)
//	--clear  delete all existing log records first
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/logrecord"
	"github.com/Atik203/Logs-Dashboard/internal/app"
	"github.com/Atik203/Logs-Dashboard/internal/app/demo"
	"github.com/Atik203/Logs-Dashboard/internal/config"
	"github.com/Atik203/Logs-Dashboard/internal/service/logs"
)

func main() {
	logsFlag := flag.Int("logs", 500, "number of log entries to generate")
	seedFlag := flag.Int64("seed", time.Now().UnixNano(), "RNG seed for reproducible runs")
	clearFlag := flag.Bool("clear", false, "delete all existing log records first")
	flag.Parse()

	if *logsFlag < 1 {
		log.Fatal("--logs must be at least 1")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := logrecord.New(pool)
	svc := logs.NewService(logger, repo, cfg.Logs)

	if *clearFlag {
		deleted, err := svc.Clear(ctx)
		if err != nil {
			logger.Error("clear logs", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("existing logs cleared", slog.Int64("deleted", deleted))
	}

	gen := demo.NewGenerator(*seedFlag, time.Now())
	inputs := gen.Generate(*logsFlag)

	created, err := svc.BulkCreate(ctx, inputs)
	if err != nil {
		logger.Error("bulk create", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("demo data generated",
		slog.Int("created", created),
		slog.Int64("seed", *seedFlag),
	)
}
