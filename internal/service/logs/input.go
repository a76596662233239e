package logs

import (
	"strings"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// CreateInput holds the parameters for creating a log record.
// A nil Timestamp means "now".
type CreateInput struct {
	Timestamp *time.Time
	Message   string
	Severity  string
	Source    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if !domain.Severity(i.Severity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of DEBUG, INFO, WARNING, ERROR, CRITICAL"})
	}
	source := strings.TrimSpace(i.Source)
	if source == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if len(source) > domain.MaxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source", Message: "too long (max 100 characters)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// record builds the domain.LogRecord from validated input.
func (i CreateInput) record() domain.LogRecord {
	rec := domain.LogRecord{
		Message:  i.Message,
		Severity: domain.Severity(i.Severity),
		Source:   strings.TrimSpace(i.Source),
	}
	if i.Timestamp != nil {
		rec.Timestamp = i.Timestamp.UTC()
	}
	return rec
}

// AggregateInput selects the aggregation dimension over a filtered set.
// GroupBy and Interval arrive as raw query strings; Resolve applies the
// fallback rules (unknown group_by acts as "source", unknown interval as
// "day"), matching the long-standing dashboard behavior.
type AggregateInput struct {
	Filter   domain.LogFilter
	GroupBy  string
	Interval string
}

// Resolve maps the raw strings onto the closed enums.
func (i AggregateInput) Resolve() (domain.GroupBy, domain.Interval) {
	group := domain.GroupBy(i.GroupBy)
	if !group.IsValid() {
		if i.GroupBy == "" {
			group = domain.GroupByDate
		} else {
			group = domain.GroupBySource
		}
	}

	interval := domain.Interval(i.Interval)
	if !interval.IsValid() {
		interval = domain.IntervalDay
	}

	return group, interval
}
