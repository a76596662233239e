package auth

import (
	"net/mail"
	"strings"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// RegisterInput holds parameters for the registration operation.
// Password2 must repeat Password exactly.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

// Validate validates the registration input. passwordMinLen comes from config.
func (i RegisterInput) Validate(passwordMinLen int) error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	} else if strings.ContainsAny(i.Username, " \t\n") {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < passwordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 128 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.Password != "" && i.Password != i.Password2 {
		errs = append(errs, domain.FieldError{Field: "password2", Message: "passwords do not match"})
	}

	if len(i.FirstName) > 150 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if len(i.LastName) > 150 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
