// Package logrecord implements the log record repository using PostgreSQL.
// Listing, aggregation, and export all share one squirrel-built predicate;
// aggregation runs as a single GROUP BY pass and export pulls bounded
// keyset-paginated batches so neither ever materializes the full result
// set in application memory.
package logrecord

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Atik203/Logs-Dashboard/internal/adapter/postgres"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

const logColumns = "id, timestamp, message, severity, source"

// Repo provides log record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new log record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// Create inserts a new log record and returns it with the store-assigned id.
// A zero Timestamp defaults to now() in the database.
func (r *Repo) Create(ctx context.Context, rec *domain.LogRecord) (*domain.LogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ins := builder.Insert("logs").Suffix("RETURNING " + logColumns)
	if rec.Timestamp.IsZero() {
		ins = ins.Columns("message", "severity", "source").
			Values(rec.Message, rec.Severity.String(), rec.Source)
	} else {
		ins = ins.Columns("timestamp", "message", "severity", "source").
			Values(rec.Timestamp, rec.Message, rec.Severity.String(), rec.Source)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert log: %w", err)
	}

	var out domain.LogRecord
	if err := scanLog(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "log", rec.ID)
	}

	return &out, nil
}

// GetByID returns a log record by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.LogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(logColumns).From("logs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get log: %w", err)
	}

	var out domain.LogRecord
	if err := scanLog(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "log", id)
	}

	return &out, nil
}

// Update replaces the mutable fields of a log record.
// Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) Update(ctx context.Context, id int64, rec *domain.LogRecord) (*domain.LogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update("logs").
		Set("timestamp", rec.Timestamp).
		Set("message", rec.Message).
		Set("severity", rec.Severity.String()).
		Set("source", rec.Source).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + logColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update log: %w", err)
	}

	var out domain.LogRecord
	if err := scanLog(querier.QueryRow(ctx, sql, args...), &out); err != nil {
		return nil, postgres.MapError(err, "log", id)
	}

	return &out, nil
}

// Delete removes a log record by id.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Delete("logs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete log: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("log %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// BulkInsert inserts many records in a single statement.
// Used by the demo data seeder; zero timestamps are not defaulted here.
func (r *Repo) BulkInsert(ctx context.Context, recs []domain.LogRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ins := builder.Insert("logs").Columns("timestamp", "message", "severity", "source")
	for _, rec := range recs {
		ins = ins.Values(rec.Timestamp, rec.Message, rec.Severity.String(), rec.Source)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk insert logs: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "log", "bulk")
	}

	return int(tag.RowsAffected()), nil
}

// DeleteAll removes every log record (administrative bulk clear).
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM logs")
	if err != nil {
		return 0, postgres.MapError(err, "log", "all")
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Filtered listing
// ---------------------------------------------------------------------------

// List returns a filtered, ordered page of records plus the total count
// of records matched by the filter.
func (r *Repo) List(ctx context.Context, f domain.LogFilter) ([]domain.LogRecord, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	f = normalize(f)

	countSQL, countArgs, err := applyFilter(builder.Select("count(*)").From("logs"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count logs: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}

	page := applyOrder(applyFilter(builder.Select(logColumns).From("logs"), f), f).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := page.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list logs: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	records := []domain.LogRecord{}
	for rows.Next() {
		var rec domain.LogRecord
		if err := scanLog(rows, &rec); err != nil {
			return nil, 0, fmt.Errorf("scan log: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate logs: %w", err)
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Aggregation
// ---------------------------------------------------------------------------

// AggregateByDate buckets the filtered records by calendar day or month
// (per interval), counts records per bucket, and returns buckets sorted
// ascending by bucket start. Buckets with no records are not emitted.
// The whole aggregation is one GROUP BY query.
func (r *Repo) AggregateByDate(ctx context.Context, f domain.LogFilter, interval domain.Interval) ([]domain.DateBucket, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	trunc := "day"
	if interval == domain.IntervalMonth {
		trunc = "month"
	}

	q := builder.Select(
		fmt.Sprintf("date_trunc('%s', timestamp)::date AS bucket", trunc),
		"count(*) AS cnt",
	).From("logs")

	sql, args, err := applyFilter(q, f).GroupBy("bucket").OrderBy("bucket ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate by date: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate logs by date: %w", err)
	}
	defer rows.Close()

	buckets := []domain.DateBucket{}
	for rows.Next() {
		var b domain.DateBucket
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, fmt.Errorf("scan date bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate date buckets: %w", err)
	}

	return buckets, nil
}

// AggregateByColumn groups the filtered records by severity or source and
// returns counts sorted descending. Only the two known grouping columns
// are accepted; anything else is a programming error.
func (r *Repo) AggregateByColumn(ctx context.Context, f domain.LogFilter, group domain.GroupBy) ([]domain.GroupCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var column string
	switch group {
	case domain.GroupBySeverity:
		column = "severity"
	case domain.GroupBySource:
		column = "source"
	default:
		return nil, fmt.Errorf("aggregate logs: unsupported group column %q", group)
	}

	q := builder.Select(column, "count(*) AS cnt").From("logs")

	sql, args, err := applyFilter(q, f).GroupBy(column).OrderBy("cnt DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate by %s: %w", column, err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate logs by %s: %w", column, err)
	}
	defer rows.Close()

	counts := []domain.GroupCount{}
	for rows.Next() {
		var gc domain.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		counts = append(counts, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group counts: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Chunked export cursor
// ---------------------------------------------------------------------------

// ListAfter returns the next batch of at most limit filtered records in
// the filter's order (with id as the tiebreaker), starting strictly
// after the cursor. A nil cursor starts from the beginning. The caller
// keeps peak memory bounded by choosing the batch size; an empty result
// means the export is complete.
func (r *Repo) ListAfter(ctx context.Context, f domain.LogFilter, cursor *domain.ExportCursor, limit int) ([]domain.LogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f = normalize(f)
	if limit <= 0 {
		limit = defaultLimit
	}

	q := applyFilter(builder.Select(logColumns).From("logs"), f)
	if cursor != nil {
		op := "<"
		if f.OrderAsc {
			op = ">"
		}
		var val any
		switch f.OrderBy {
		case domain.OrderBySeverity:
			val = cursor.Severity
		case domain.OrderBySource:
			val = cursor.Source
		default:
			val = cursor.Timestamp
		}
		q = q.Where(sq.Expr("("+f.OrderBy.String()+", id) "+op+" (?, ?)", val, cursor.ID))
	}

	sql, args, err := applyOrder(q, f).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build export batch: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("export batch: %w", err)
	}
	defer rows.Close()

	records := []domain.LogRecord{}
	for rows.Next() {
		var rec domain.LogRecord
		if err := scanLog(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export batch: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner, rec *domain.LogRecord) error {
	var severity string
	if err := row.Scan(&rec.ID, &rec.Timestamp, &rec.Message, &severity, &rec.Source); err != nil {
		return err
	}
	rec.Severity = domain.Severity(severity)
	return nil
}
