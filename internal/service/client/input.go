package client

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateClientInput holds the parameters for creating a client.
type CreateClientInput struct {
	CustomID *string
	Name     string
	Email    *string
	Phone    *string
	Company  *string
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i CreateClientInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.CustomID != nil && len(strings.TrimSpace(*i.CustomID)) > 20 {
		errs = append(errs, domain.FieldError{Field: "custom_id", Message: "max 20 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateClientInput holds the parameters for updating a client.
// The update is a full replacement of the editable fields.
type UpdateClientInput struct {
	ClientID uuid.UUID
	CustomID *string
	Name     string
	Email    *string
	Phone    *string
	Company  *string
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateClientInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.CustomID != nil && len(strings.TrimSpace(*i.CustomID)) > 20 {
		errs = append(errs, domain.FieldError{Field: "custom_id", Message: "max 20 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
