// Package preference implements the filter preference repository using
// PostgreSQL. Every query is scoped by user_id, so a preference belonging
// to another user is indistinguishable from a missing one: lookups return
// domain.ErrNotFound, never domain.ErrForbidden.
package preference

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

const prefColumns = "id, user_id, name, severity, source, date_from, date_to, created_at, updated_at"

// builder is the shared squirrel statement builder with $n placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides filter preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new filter preference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new preference for the user.
// A duplicate (user_id, name) pair maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.FilterPreference) (*domain.FilterPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert("filter_preferences").
		Columns("user_id", "name", "severity", "source", "date_from", "date_to").
		Values(p.UserID, p.Name, p.Severity, p.Source, p.DateFrom, p.DateTo).
		Suffix("RETURNING " + prefColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert preference: %w", err)
	}

	var out domain.FilterPreference
	if err := scanPreference(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "filter_preference", p.Name)
	}

	return &out, nil
}

// GetByID returns a preference by id, scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.FilterPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(prefColumns).From("filter_preferences").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get preference: %w", err)
	}

	var out domain.FilterPreference
	if err := scanPreference(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "filter_preference", id)
	}

	return &out, nil
}

// List returns all preferences of the user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.FilterPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(prefColumns).From("filter_preferences").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list preferences: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	prefs := []domain.FilterPreference{}
	for rows.Next() {
		var p domain.FilterPreference
		if err := scanPreference(rows, &p); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}

	return prefs, nil
}

// Update replaces the filter fields of a preference, scoped to the owning
// user. Returns domain.ErrNotFound when the id does not exist for this user
// and domain.ErrAlreadyExists when the new name collides.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int64, p *domain.FilterPreference) (*domain.FilterPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update("filter_preferences").
		Set("name", p.Name).
		Set("severity", p.Severity).
		Set("source", p.Source).
		Set("date_from", p.DateFrom).
		Set("date_to", p.DateTo).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + prefColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update preference: %w", err)
	}

	var out domain.FilterPreference
	if err := scanPreference(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "filter_preference", id)
	}

	return &out, nil
}

// Delete removes a preference, scoped to the owning user.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Delete("filter_preferences").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete preference: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "filter_preference", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("filter_preference %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreference(row rowScanner, p *domain.FilterPreference) error {
	var dateFrom, dateTo *time.Time
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Severity, &p.Source,
		&dateFrom, &dateTo, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	p.DateFrom = dateFrom
	p.DateTo = dateTo
	return nil
}
