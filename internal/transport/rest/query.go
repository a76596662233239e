package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// dateLayouts are accepted for date_from/date_to. A bare date means
// midnight UTC of that day.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseLogFilter builds a domain.LogFilter from query parameters.
// Malformed dates, invalid severities and disallowed ordering fields
// produce field-level validation errors; unrecognized keys are ignored.
func parseLogFilter(q url.Values) (domain.LogFilter, error) {
	var (
		f    domain.LogFilter
		errs []domain.FieldError
	)

	if v := q.Get("severity"); v != "" {
		sev := domain.Severity(strings.ToUpper(v))
		if !sev.IsValid() {
			errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of DEBUG, INFO, WARNING, ERROR, CRITICAL"})
		} else {
			f.Severity = &sev
		}
	}

	if v := q.Get("source"); v != "" {
		f.Source = &v
	}

	if v := q.Get("date_from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_from", Message: "invalid date, expected ISO-8601"})
		} else {
			f.DateFrom = &t
		}
	}

	if v := q.Get("date_to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_to", Message: "invalid date, expected ISO-8601"})
		} else {
			f.DateTo = &t
		}
	}

	if v := q.Get("search"); v != "" {
		f.Search = &v
	}

	if v := q.Get("ordering"); v != "" {
		field, asc, ok := parseOrdering(v)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "ordering", Message: "must be one of timestamp, severity, source, optionally prefixed with -"})
		} else {
			f.OrderBy = field
			f.OrderAsc = asc
		}
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		} else {
			f.Limit = n
		}
	}

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		} else {
			f.Offset = n
		}
	}

	if len(errs) > 0 {
		return domain.LogFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

func parseDate(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseOrdering accepts a field name with an optional leading "-" for
// descending order. A bare field sorts ascending; the listing default
// (no ordering param) stays timestamp descending.
func parseOrdering(v string) (domain.OrderField, bool, bool) {
	asc := true
	if strings.HasPrefix(v, "-") {
		asc = false
		v = strings.TrimPrefix(v, "-")
	}
	field := domain.OrderField(v)
	if !field.IsValid() {
		return "", false, false
	}
	return field, asc, true
}
