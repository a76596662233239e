package logs

import (
	"context"
	"fmt"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// AggregateResult carries the rows of one aggregation run. Exactly one
// of Dates or Groups is populated, depending on GroupBy.
type AggregateResult struct {
	GroupBy  domain.GroupBy
	Interval domain.Interval
	Dates    []domain.DateBucket
	Groups   []domain.GroupCount
}

// Aggregate computes grouped counts over the filtered record set in a
// single SQL pass. Date mode buckets by calendar day or month and sorts
// ascending by bucket; severity and source modes sort descending by count.
func (s *Service) Aggregate(ctx context.Context, input AggregateInput) (*AggregateResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	group, interval := input.Resolve()
	result := &AggregateResult{GroupBy: group, Interval: interval}

	switch group {
	case domain.GroupByDate:
		buckets, err := s.logs.AggregateByDate(ctx, input.Filter, interval)
		if err != nil {
			return nil, fmt.Errorf("aggregate by date: %w", err)
		}
		result.Dates = buckets
	default:
		counts, err := s.logs.AggregateByColumn(ctx, input.Filter, group)
		if err != nil {
			return nil, fmt.Errorf("aggregate by %s: %w", group, err)
		}
		result.Groups = counts
	}

	return result, nil
}
