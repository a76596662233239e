// Package logs implements the log query, aggregation, and export
// operations on top of the log record repository.
package logs

import (
	"context"
	"log/slog"

	"github.com/Atik203/Logs-Dashboard/internal/config"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// logRepo defines the repository interface needed by the logs service.
type logRepo interface {
	Create(ctx context.Context, rec *domain.LogRecord) (*domain.LogRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.LogRecord, error)
	Update(ctx context.Context, id int64, rec *domain.LogRecord) (*domain.LogRecord, error)
	Delete(ctx context.Context, id int64) error
	BulkInsert(ctx context.Context, recs []domain.LogRecord) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context, f domain.LogFilter) ([]domain.LogRecord, int, error)
	AggregateByDate(ctx context.Context, f domain.LogFilter, interval domain.Interval) ([]domain.DateBucket, error)
	AggregateByColumn(ctx context.Context, f domain.LogFilter, group domain.GroupBy) ([]domain.GroupCount, error)
	ListAfter(ctx context.Context, f domain.LogFilter, cursor *domain.ExportCursor, limit int) ([]domain.LogRecord, error)
}

// Service provides log listing, CRUD, aggregation, and CSV export.
type Service struct {
	logs logRepo
	cfg  config.LogsConfig
	log  *slog.Logger
}

// NewService creates a new logs service.
func NewService(logger *slog.Logger, logs logRepo, cfg config.LogsConfig) *Service {
	return &Service{
		logs: logs,
		cfg:  cfg,
		log:  logger.With("service", "logs"),
	}
}
