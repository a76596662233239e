// Package token implements refresh token persistence using PostgreSQL.
// Only SHA-256 hashes of tokens are stored.
package token

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

const tokenColumns = "id, user_id, token_hash, expires_at, created_at, revoked_at"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert refresh token: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	return nil
}

// GetByHash returns a refresh token by its hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(tokenColumns).From("refresh_tokens").
		Where(sq.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get refresh token: %w", err)
	}

	var t domain.RefreshToken
	err = querier.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return &t, nil
}

// Revoke marks a refresh token as revoked.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh token: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh_token %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// RevokeAllForUser revokes every active refresh token of the user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke user tokens: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	return nil
}

// DeleteExpired removes tokens that expired before the retention cutoff.
// Used by the offline cleanup command.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM refresh_tokens WHERE expires_at < now()")
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}

	return tag.RowsAffected(), nil
}
