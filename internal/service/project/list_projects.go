package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// ListProjects returns projects with client names and document counts.
// A non-nil clientID restricts the result to that client.
func (s *Service) ListProjects(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
