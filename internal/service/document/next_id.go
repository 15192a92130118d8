package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// NextDisplayID derives the next sequential display ID for a document under
// the given project: "<projectDisplayID>-<NN>". A project without a display
// ID contributes the placeholder code instead.
//
// Like the project variant the value is advisory; a concurrent create that
// wins the same suffix makes the later insert fail with domain.ErrConflict.
func (s *Service) NextDisplayID(ctx context.Context, projectID uuid.UUID) (domain.NextID, error) {
	if projectID == uuid.Nil {
		return domain.NextID{}, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return domain.NextID{}, fmt.Errorf("get project: %w", err)
	}

	existing, err := s.documents.ListDisplayIDs(ctx, projectID)
	if err != nil {
		return domain.NextID{}, fmt.Errorf("list display ids: %w", err)
	}

	suffix := domain.NextSuffix(existing, domain.DocumentSuffixWidth)
	return domain.NextID{
		Suffix:    suffix,
		DisplayID: domain.ComposeDisplayID(project.DisplayID, suffix),
	}, nil
}
