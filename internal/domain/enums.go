package domain

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusOnGoing           ProjectStatus = "ON_GOING"
	ProjectStatusCompleteSolved    ProjectStatus = "COMPLETE_SOLVED"
	ProjectStatusCompleteNotSolved ProjectStatus = "COMPLETE_NOT_SOLVED"
	ProjectStatusCancelled         ProjectStatus = "CANCELLED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusOnGoing, ProjectStatusCompleteSolved,
		ProjectStatusCompleteNotSolved, ProjectStatusCancelled:
		return true
	}
	return false
}

// DocumentType classifies a document. Only DocumentTypeInvoice carries
// meaningful amount/paid fields.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "INVOICE"
	DocumentTypeReport  DocumentType = "REPORT"
	DocumentTypeOthers  DocumentType = "OTHERS"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeReport, DocumentTypeOthers:
		return true
	}
	return false
}

// DocumentStatus represents the submission state of a document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusSubmitted DocumentStatus = "SUBMITTED"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusSubmitted:
		return true
	}
	return false
}
