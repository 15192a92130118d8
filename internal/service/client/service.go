// Package client implements client management operations.
package client

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo interface {
	List(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error)
}

// Service provides client management operations.
type Service struct {
	clients  clientRepo
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new Client service.
func NewService(log *slog.Logger, clients clientRepo, projects projectRepo) *Service {
	return &Service{
		clients:  clients,
		projects: projects,
		log:      log.With("service", "client"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
