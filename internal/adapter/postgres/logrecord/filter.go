package logrecord

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// builder is the shared squirrel statement builder with $n placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// normalize applies defaults and clamps pagination values.
// Ordering falls back to descending timestamp when the field is unset;
// the transport layer rejects fields outside the allow-list before
// the filter reaches the repository.
func normalize(f domain.LogFilter) domain.LogFilter {
	if !f.OrderBy.IsValid() {
		f.OrderBy = domain.OrderByTimestamp
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// applyFilter adds the WHERE clauses for all active constraints.
// Constraints combine with AND; the free-text search is an OR of
// case-insensitive substring matches over message and source.
func applyFilter(q sq.SelectBuilder, f domain.LogFilter) sq.SelectBuilder {
	if f.Severity != nil {
		q = q.Where(sq.Eq{"severity": f.Severity.String()})
	}
	if f.Source != nil {
		q = q.Where(sq.Eq{"source": *f.Source})
	}
	if f.DateFrom != nil {
		q = q.Where(sq.GtOrEq{"timestamp": *f.DateFrom})
	}
	if f.DateTo != nil {
		q = q.Where(sq.LtOrEq{"timestamp": *f.DateTo})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + escapeLike(*f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"message": pattern},
			sq.ILike{"source": pattern},
		})
	}
	return q
}

// applyOrder adds the ORDER BY clause. The id column is a deterministic
// tiebreaker so pagination and export see a stable order.
func applyOrder(q sq.SelectBuilder, f domain.LogFilter) sq.SelectBuilder {
	dir := "DESC"
	if f.OrderAsc {
		dir = "ASC"
	}
	return q.OrderBy(f.OrderBy.String()+" "+dir, "id "+dir)
}

// escapeLike escapes the LIKE metacharacters in a search term so the
// term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
