package logs

import (
	"context"
	"fmt"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// ListResult is one page of a filtered listing.
type ListResult struct {
	Records []domain.LogRecord
	Total   int
}

// List returns a filtered, ordered page of log records plus the total
// number of records matching the filter.
func (s *Service) List(ctx context.Context, f domain.LogFilter) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	f = s.clampLimit(f)

	records, total, err := s.logs.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return &ListResult{Records: records, Total: total}, nil
}

// Get returns a single log record by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.LogRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	return rec, nil
}

// clampLimit applies configured default and maximum page sizes.
func (s *Service) clampLimit(f domain.LogFilter) domain.LogFilter {
	if f.Limit <= 0 {
		f.Limit = s.cfg.ListDefaultLimit
	}
	if s.cfg.ListMaxLimit > 0 && f.Limit > s.cfg.ListMaxLimit {
		f.Limit = s.cfg.ListMaxLimit
	}
	return f
}
