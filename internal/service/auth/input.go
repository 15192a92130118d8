package auth

import (
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// LoginInput holds the credentials for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
