//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/logrecord"
	prefrepo "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/preference"
	"github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/token"
	userrepo "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres/user"
	authpkg "github.com/Atik203/Logs-Dashboard/internal/auth"
	"github.com/Atik203/Logs-Dashboard/internal/config"
	authsvc "github.com/Atik203/Logs-Dashboard/internal/service/auth"
	"github.com/Atik203/Logs-Dashboard/internal/service/logs"
	prefsvc "github.com/Atik203/Logs-Dashboard/internal/service/preference"
	"github.com/Atik203/Logs-Dashboard/internal/transport/middleware"
	"github.com/Atik203/Logs-Dashboard/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	logRepo := logrecord.New(pool)
	prefRepo := prefrepo.New(pool)
	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authCfg := config.AuthConfig{
		JWTSecret:       jwtSecret,
		JWTIssuer:       jwtIssuer,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 720 * time.Hour,
		PasswordMinLen:  8,
	}

	// 5. Services.
	authService := authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr, authCfg)
	logsService := logs.NewService(logger, logRepo, config.LogsConfig{
		ExportBatchSize:  50,
		ListDefaultLimit: 100,
		ListMaxLimit:     1000,
	})
	prefService := prefsvc.NewService(logger, prefRepo)

	// 6. Router + middleware chain, same shape as the production wiring.
	mux := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Logs:        rest.NewLogsHandler(logsService, logger),
		Preferences: rest.NewPreferencesHandler(prefService, logger),
		Health:      rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// doJSON sends a JSON request and returns status + decoded body.
// A nil body sends no payload; an empty response body decodes to nil.
// ---------------------------------------------------------------------------

func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints that answer with a bare JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result []any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// doRaw sends a request and returns the raw response (body not decoded).
// The caller owns closing the body.
func (ts *testServer) doRaw(t *testing.T, method, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// createTestUserAndGetToken inserts a user directly into the DB and
// returns a valid JWT access token for that user.
// ---------------------------------------------------------------------------

func createTestUserAndGetToken(t *testing.T, ts *testServer) string {
	tok, _ := createTestUserWithID(t, ts)
	return tok
}

// createTestUserWithID is like createTestUserAndGetToken but also returns
// the user's UUID (needed for DB verification).
func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	now := time.Now()

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		userID,
		fmt.Sprintf("test-%s@example.com", userID.String()[:8]),
		fmt.Sprintf("test-%s", userID.String()[:8]),
		"Test", "User",
		"$2a$10$0000000000000000000000000000000000000000000000000000",
		now, now,
	)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}

	tok, err := ts.jwt.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return tok, userID
}

// uniqueName returns a short unique string for non-conflicting test data.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
