package logs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// Create stores a single log record. The timestamp defaults to insertion
// time when the input leaves it unset.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.LogRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := input.record()
	created, err := s.logs.Create(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}

	return created, nil
}

// Update replaces the fields of an existing record. Records are normally
// immutable; this exists for the administrative collection endpoints.
func (s *Service) Update(ctx context.Context, id int64, input CreateInput) (*domain.LogRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update log: %w", err)
	}

	rec := input.record()
	if input.Timestamp == nil {
		rec.Timestamp = current.Timestamp
	}

	updated, err := s.logs.Update(ctx, id, &rec)
	if err != nil {
		return nil, fmt.Errorf("update log: %w", err)
	}

	return updated, nil
}

// Delete removes a single record by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	return nil
}

// BulkCreate validates and inserts many records in one statement.
// Used by the offline demo data seeder.
func (s *Service) BulkCreate(ctx context.Context, inputs []CreateInput) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}

	recs := make([]domain.LogRecord, len(inputs))
	for idx, input := range inputs {
		if err := input.Validate(); err != nil {
			return 0, fmt.Errorf("record %d: %w", idx, err)
		}
		recs[idx] = input.record()
	}

	n, err := s.logs.BulkInsert(ctx, recs)
	if err != nil {
		return 0, fmt.Errorf("bulk insert logs: %w", err)
	}

	return n, nil
}

// Clear removes every log record. It backs the seeder's --clear flag
// and has no HTTP surface, so it takes no caller identity.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	n, err := s.logs.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear logs: %w", err)
	}

	s.log.InfoContext(ctx, "logs cleared", slog.Int64("deleted", n))

	return n, nil
}
