package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateDocumentInput holds the parameters for creating a document.
// DisplayID is optional: when nil the next sequential ID is derived for the
// project. Amount and Paid are accepted only on INVOICE documents.
type CreateDocumentInput struct {
	ProjectID uuid.UUID
	DisplayID *string
	Name      string
	DocDate   *time.Time
	Type      *domain.DocumentType
	Status    *domain.DocumentStatus
	Link      *string
	Amount    *decimal.Decimal
	Paid      *bool
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.DisplayID != nil && len(strings.TrimSpace(*i.DisplayID)) > 50 {
		errs = append(errs, domain.FieldError{Field: "display_id", Message: "max 50 characters"})
	}
	errs = append(errs, validateInvoiceFields(i.Type, i.Amount, i.Paid)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDocumentInput holds the parameters for updating a document.
// The update is a full replacement of the editable fields; file metadata is
// managed by the upload endpoint.
type UpdateDocumentInput struct {
	DocumentID uuid.UUID
	DisplayID  *string
	Name       string
	DocDate    *time.Time
	Type       domain.DocumentType
	Status     domain.DocumentStatus
	Link       *string
	Amount     *decimal.Decimal
	Paid       *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.DisplayID != nil && len(strings.TrimSpace(*i.DisplayID)) > 50 {
		errs = append(errs, domain.FieldError{Field: "display_id", Message: "max 50 characters"})
	}
	errs = append(errs, validateInvoiceFields(&i.Type, i.Amount, i.Paid)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateInvoiceFields rejects amount/paid on non-invoice documents and
// negative amounts on invoices.
func validateInvoiceFields(docType *domain.DocumentType, amount *decimal.Decimal, paid *bool) []domain.FieldError {
	var errs []domain.FieldError

	isInvoice := docType != nil && *docType == domain.DocumentTypeInvoice
	if !isInvoice {
		if amount != nil {
			errs = append(errs, domain.FieldError{Field: "amount", Message: "only valid for INVOICE documents"})
		}
		if paid != nil {
			errs = append(errs, domain.FieldError{Field: "paid", Message: "only valid for INVOICE documents"})
		}
		return errs
	}

	if amount != nil && amount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	return errs
}
