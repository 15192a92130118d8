package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// DeleteProject removes a project together with its documents.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", projectID.String()),
	)

	return nil
}
