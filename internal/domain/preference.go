package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPreferenceNameLen is the column limit for FilterPreference.Name.
const MaxPreferenceNameLen = 100

// FilterPreference is a named, per-user saved filter configuration.
// (UserID, Name) is unique; a preference is only ever visible to its owner.
// Severity and Source use the empty string for "unset"; the date bounds
// are calendar dates (time portion zero).
type FilterPreference struct {
	ID        int64
	UserID    uuid.UUID
	Name      string
	Severity  string
	Source    string
	DateFrom  *time.Time
	DateTo    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter converts the saved preference into a LogFilter ready to run.
func (p *FilterPreference) Filter() LogFilter {
	var f LogFilter
	if p.Severity != "" {
		sev := Severity(p.Severity)
		f.Severity = &sev
	}
	if p.Source != "" {
		src := p.Source
		f.Source = &src
	}
	f.DateFrom = p.DateFrom
	f.DateTo = p.DateTo
	return f
}
