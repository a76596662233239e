package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$0000000000000000000000000000000000000000000000000000",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedLog inserts a single log record and returns it with its assigned id.
func SeedLog(t *testing.T, pool *pgxpool.Pool, ts time.Time, message string, severity domain.Severity, source string) domain.LogRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.LogRecord{
		Timestamp: ts.UTC().Truncate(time.Microsecond),
		Message:   message,
		Severity:  severity,
		Source:    source,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO logs (timestamp, message, severity, source)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.Timestamp, rec.Message, string(rec.Severity), rec.Source,
	).Scan(&rec.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return rec
}
