// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

const userColumns = "id, email, username, first_name, last_name, password_hash, created_at, updated_at"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, email)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq, id any) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(userColumns).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u domain.User
	err = querier.QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email or username maps to a domain.ValidationError naming
// the offending field.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert("users").
		Columns("id", "email", "username", "first_name", "last_name", "password_hash").
		Values(u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var out domain.User
	err = querier.QueryRow(ctx, sql, args...).Scan(
		&out.ID, &out.Email, &out.Username, &out.FirstName, &out.LastName,
		&out.PasswordHash, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if fieldErr := mapUniqueViolation(err); fieldErr != nil {
			return nil, fieldErr
		}
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &out, nil
}

// mapUniqueViolation turns a unique-constraint violation on the users table
// into a field-level validation error, so callers can tell the client which
// field is already taken.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return domain.NewValidationError("email", "a user with this email already exists")
	case "users_username_key":
		return domain.NewValidationError("username", "a user with this username already exists")
	default:
		return nil
	}
}
