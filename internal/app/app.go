package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/logrecord"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/preference"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/token"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/user"
	"github.com/Atik203/Logs-Dashboard/internal/auth"
	"github.com/Atik203/Logs-Dashboard/internal/config"
	authsvc "github.com/Atik203/Logs-Dashboard/internal/service/auth"
	"github.com/Atik203/Logs-Dashboard/internal/service/logs"
	prefsvc "github.com/Atik203/Logs-Dashboard/internal/service/preference"
	"github.com/Atik203/Logs-Dashboard/internal/transport/middleware"
	"github.com/Atik203/Logs-Dashboard/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repositories, services and HTTP transport, and serves until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	logRepo := logrecord.New(pool)
	prefRepo := preference.New(pool)
	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	logsService := logs.NewService(logger, logRepo, cfg.Logs)
	prefService := prefsvc.NewService(logger, prefRepo)
	authService := authsvc.NewService(logger, userRepo, tokenRepo, txManager, jwtManager, cfg.Auth)

	mux := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Logs:        rest.NewLogsHandler(logsService, logger),
		Preferences: rest.NewPreferencesHandler(prefService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	})

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	}
	if cfg.Server.RateLimitPerMin > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit(cfg.Server.RateLimitPerMin))
	}
	handler := middleware.Chain(chain...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
