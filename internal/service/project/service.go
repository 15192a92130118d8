// Package project implements project management and display ID derivation.
package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

type projectRepo interface {
	List(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListDisplayIDs(ctx context.Context, clientID uuid.UUID) ([]string, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project management operations.
type Service struct {
	projects projectRepo
	clients  clientRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo, clients clientRepo, tx txManager) *Service {
	return &Service{
		projects: projects,
		clients:  clients,
		tx:       tx,
		log:      log.With("service", "project"),
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
