package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// ListDocuments returns documents with their project names.
// A non-nil projectID restricts the result to that project.
func (s *Service) ListDocuments(ctx context.Context, projectID *uuid.UUID) ([]domain.Document, error) {
	docs, err := s.documents.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns a document by ID.
func (s *Service) GetDocument(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	if documentID == uuid.Nil {
		return nil, domain.NewValidationError("document_id", "required")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}
