package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// GetClient returns a client by ID with its projects attached.
func (s *Service) GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "required")
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	projects, err := s.projects.List(ctx, &clientID)
	if err != nil {
		return nil, fmt.Errorf("list client projects: %w", err)
	}
	client.Projects = projects
	client.ProjectCount = len(projects)

	return client, nil
}
