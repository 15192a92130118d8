// Package ledger implements invoice aggregation and dashboard summaries.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

type documentRepo interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Document, error)
	Count(ctx context.Context) (int, error)
}

type clientRepo interface {
	Count(ctx context.Context) (int, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Count(ctx context.Context) (int, error)
}

// Service provides ledger and dashboard operations.
type Service struct {
	documents documentRepo
	clients   clientRepo
	projects  projectRepo
	log       *slog.Logger
}

// NewService creates a new Ledger service.
func NewService(log *slog.Logger, documents documentRepo, clients clientRepo, projects projectRepo) *Service {
	return &Service{
		documents: documents,
		clients:   clients,
		projects:  projects,
		log:       log.With("service", "ledger"),
	}
}

// Dashboard aggregates entity counts with the global invoice ledger.
type Dashboard struct {
	ClientCount   int
	ProjectCount  int
	DocumentCount int
	Ledger        domain.Ledger
}
