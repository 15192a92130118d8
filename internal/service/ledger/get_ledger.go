package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// GetLedger aggregates invoice totals, globally or for one project. The
// project is fetched first so an unknown ID yields not-found instead of an
// empty ledger.
func (s *Service) GetLedger(ctx context.Context, projectID *uuid.UUID) (domain.Ledger, error) {
	if projectID != nil {
		if _, err := s.projects.GetByID(ctx, *projectID); err != nil {
			return domain.Ledger{}, fmt.Errorf("get project: %w", err)
		}
	}

	docs, err := s.documents.List(ctx, projectID)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("list documents: %w", err)
	}

	return domain.AggregateLedger(docs, projectID), nil
}
