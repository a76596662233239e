package preference

import (
	"strings"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// Input holds the caller-supplied fields of a filter preference.
// Severity and Source use the empty string for "unset".
type Input struct {
	Name     string
	Severity string
	Source   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > domain.MaxPreferenceNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100 characters)"})
	}

	if i.Severity != "" && !domain.Severity(i.Severity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of DEBUG, INFO, WARNING, ERROR, CRITICAL"})
	}

	if len(i.Source) > domain.MaxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source", Message: "too long (max 100 characters)"})
	}

	if i.DateFrom != nil && i.DateTo != nil && i.DateFrom.After(*i.DateTo) {
		errs = append(errs, domain.FieldError{Field: "date_from", Message: "must not be after date_to"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// preference builds the domain.FilterPreference from validated input.
// UserID is left for the service to assign from the authenticated context.
func (i Input) preference() domain.FilterPreference {
	return domain.FilterPreference{
		Name:     strings.TrimSpace(i.Name),
		Severity: i.Severity,
		Source:   strings.TrimSpace(i.Source),
		DateFrom: i.DateFrom,
		DateTo:   i.DateTo,
	}
}
