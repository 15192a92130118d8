package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// DeleteDocument removes a document and its uploaded file, if any. The row
// goes first; a file that then fails to delete is only logged, since the
// orphan sweep in cmd/cleanup-files picks it up later.
func (s *Service) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	if documentID == uuid.Nil {
		return domain.NewValidationError("document_id", "required")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	if err := s.documents.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	if doc.File != nil {
		if err := s.files.Remove(doc.File.Path); err != nil {
			s.log.WarnContext(ctx, "failed to remove document file",
				slog.String("document_id", documentID.String()),
				slog.String("path", doc.File.Path),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("document_id", documentID.String()),
	)

	return nil
}
