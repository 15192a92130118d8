package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
// DisplayID is optional: when nil the next sequential ID is derived for the
// client; when set the given value is used as-is.
type CreateProjectInput struct {
	ClientID    uuid.UUID
	DisplayID   *string
	Name        string
	Description *string
	Status      *domain.ProjectStatus
	ProjectDate *time.Time
	Location    *string
	Tag         *string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
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
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.DisplayID != nil && len(strings.TrimSpace(*i.DisplayID)) > 50 {
		errs = append(errs, domain.FieldError{Field: "display_id", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
// The update is a full replacement of the editable fields.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	ClientID    uuid.UUID
	DisplayID   *string
	Name        string
	Description *string
	Status      domain.ProjectStatus
	ProjectDate *time.Time
	Location    *string
	Tag         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
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
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.DisplayID != nil && len(strings.TrimSpace(*i.DisplayID)) > 50 {
		errs = append(errs, domain.FieldError{Field: "display_id", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
