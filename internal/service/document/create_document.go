package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateDocument creates a document under a project. Without an explicit
// display ID the next sequential one is derived; the unique constraint per
// project is the final arbiter and a collision surfaces as domain.ErrConflict.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	docType := domain.DocumentTypeOthers
	if input.Type != nil {
		docType = *input.Type
	}

	status := domain.DocumentStatusDraft
	if input.Status != nil {
		status = *input.Status
	}

	// Derivation and insert share one transaction so the suffix is computed
	// from the snapshot the insert runs against.
	var created *domain.Document
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		displayID := trimOrNil(input.DisplayID)
		if displayID == nil {
			derived, err := s.NextDisplayID(ctx, input.ProjectID)
			if err != nil {
				return err
			}
			displayID = &derived.DisplayID
		}

		d, err := s.documents.Create(ctx, &domain.Document{
			ProjectID: input.ProjectID,
			DisplayID: displayID,
			Name:      strings.TrimSpace(input.Name),
			DocDate:   input.DocDate,
			Type:      docType,
			Status:    status,
			Link:      trimOrNil(input.Link),
			Amount:    input.Amount,
			Paid:      input.Paid,
		})
		if err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("document_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}
