package ledger

import (
	"context"
	"fmt"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// GetDashboard returns entity counts plus the global invoice ledger.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	projectCount, err := s.projects.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	documentCount, err := s.documents.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	docs, err := s.documents.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return &Dashboard{
		ClientCount:   clientCount,
		ProjectCount:  projectCount,
		DocumentCount: documentCount,
		Ledger:        domain.AggregateLedger(docs, nil),
	}, nil
}
