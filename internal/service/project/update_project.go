package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// UpdateProject replaces a project's editable fields. A stored display ID is
// never re-derived; it changes only when the caller supplies a new value.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag := domain.DefaultProjectTag
	if t := trimOrNil(input.Tag); t != nil {
		tag = *t
	}

	updated, err := s.projects.Update(ctx, input.ProjectID, &domain.Project{
		ClientID:    input.ClientID,
		DisplayID:   trimOrNil(input.DisplayID),
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Status:      input.Status,
		ProjectDate: input.ProjectDate,
		Location:    trimOrNil(input.Location),
		Tag:         tag,
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("project_id", updated.ID.String()),
	)

	return updated, nil
}
