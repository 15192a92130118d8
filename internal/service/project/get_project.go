package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// GetProject returns a project by ID.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}
