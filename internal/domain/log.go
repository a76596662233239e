package domain

import "time"

// Severity is the urgency level of a log record.
// The set is closed: values outside the five constants are invalid
// and must be rejected at the boundary.
type Severity string

const (
	SeverityDebug    Severity = "DEBUG"
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// Severities lists all valid severity values in increasing urgency order.
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
}

// MaxSourceLen is the column limit for LogRecord.Source and the
// source filter of a FilterPreference.
const MaxSourceLen = 100

// LogRecord is a single stored log entry. Records are immutable after
// creation in normal operation; ID is assigned by the store.
type LogRecord struct {
	ID        int64
	Timestamp time.Time
	Message   string
	Severity  Severity
	Source    string
}

// OrderField is a sortable column of the log listing.
type OrderField string

const (
	OrderByTimestamp OrderField = "timestamp"
	OrderBySeverity  OrderField = "severity"
	OrderBySource    OrderField = "source"
)

func (f OrderField) String() string { return string(f) }

func (f OrderField) IsValid() bool {
	switch f {
	case OrderByTimestamp, OrderBySeverity, OrderBySource:
		return true
	}
	return false
}

// LogFilter holds the query parameters for listing, aggregating, or
// exporting log records. Nil pointer fields mean "no constraint";
// all active constraints combine with AND.
type LogFilter struct {
	// Severity matches exactly against the severity enum.
	Severity *Severity

	// Source matches exactly.
	Source *string

	// DateFrom selects records with timestamp >= DateFrom (inclusive).
	DateFrom *time.Time

	// DateTo selects records with timestamp <= DateTo (inclusive).
	DateTo *time.Time

	// Search is a case-insensitive substring matched against
	// message OR source.
	Search *string

	// OrderBy defaults to timestamp when empty.
	OrderBy OrderField

	// OrderAsc flips the direction; default is descending.
	OrderAsc bool

	// Limit/Offset paginate the listing. Zero limit means the
	// repository default.
	Limit  int
	Offset int
}

// GroupBy selects the aggregation dimension.
type GroupBy string

const (
	GroupByDate     GroupBy = "date"
	GroupBySeverity GroupBy = "severity"
	GroupBySource   GroupBy = "source"
)

func (g GroupBy) String() string { return string(g) }

func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByDate, GroupBySeverity, GroupBySource:
		return true
	}
	return false
}

// Interval selects the bucket width for date aggregation.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalMonth Interval = "month"
)

func (i Interval) String() string { return string(i) }

func (i Interval) IsValid() bool {
	switch i {
	case IntervalDay, IntervalMonth:
		return true
	}
	return false
}

// ExportCursor marks the position after the last record of an export
// batch. It carries every orderable column so the repository can resume
// the keyset scan on whichever column the filter ordered by, with id as
// the tiebreaker.
type ExportCursor struct {
	Timestamp time.Time
	Severity  string
	Source    string
	ID        int64
}

// DateBucket is one row of a date aggregation: the bucket start
// (truncated to day or month) and the number of records in it.
// Buckets with zero records are never emitted.
type DateBucket struct {
	Date  time.Time
	Count int
}

// GroupCount is one row of a severity or source aggregation.
type GroupCount struct {
	Key   string
	Count int
}
