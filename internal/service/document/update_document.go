package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// UpdateDocument replaces a document's editable fields. A stored display ID
// is never re-derived; it changes only when the caller supplies a new value.
// File metadata is untouched; use UploadFile for that.
func (s *Service) UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.documents.Update(ctx, input.DocumentID, &domain.Document{
		DisplayID: trimOrNil(input.DisplayID),
		Name:      strings.TrimSpace(input.Name),
		DocDate:   input.DocDate,
		Type:      input.Type,
		Status:    input.Status,
		Link:      trimOrNil(input.Link),
		Amount:    input.Amount,
		Paid:      input.Paid,
	})
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	s.log.InfoContext(ctx, "document updated",
		slog.String("document_id", updated.ID.String()),
	)

	return updated, nil
}
