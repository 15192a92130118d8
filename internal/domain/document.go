package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document represents a deliverable attached to a project: an invoice, a
// report, a link, or an uploaded file. DisplayID is the composite identifier
// ("<clientCode>-<projectCode>-<suffix>"); like project display IDs it is
// advisory at creation and immutable afterwards unless the user overrides it.
//
// Amount and Paid are only meaningful when Type is DocumentTypeInvoice.
// Paid is tri-state: nil means "not yet determined", not "unpaid".
type Document struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	DisplayID *string
	Name      string
	DocDate   *time.Time
	Type      DocumentType
	Status    DocumentStatus
	Link      *string
	File      *FileInfo
	Amount    *decimal.Decimal
	Paid      *bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProjectName is populated by list queries.
	ProjectName string
}

// FileInfo describes a file uploaded for a document.
type FileInfo struct {
	Name      string
	Path      string
	MimeType  string
	SizeBytes int64
}

// IsInvoice reports whether the document participates in ledger aggregation.
func (d *Document) IsInvoice() bool {
	return d.Type == DocumentTypeInvoice
}

// InvoiceAmount returns the document's amount for ledger purposes.
// Non-invoice documents contribute zero regardless of any stored value.
func (d *Document) InvoiceAmount() decimal.Decimal {
	if !d.IsInvoice() || d.Amount == nil {
		return decimal.Zero
	}
	return *d.Amount
}
