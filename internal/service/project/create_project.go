package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateProject creates a project for a client. Without an explicit display
// ID the next sequential one is derived at create time; either way the unique
// constraint per client is the final arbiter and a collision surfaces as
// domain.ErrConflict.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ProjectStatusOnGoing
	if input.Status != nil {
		status = *input.Status
	}

	tag := domain.DefaultProjectTag
	if t := trimOrNil(input.Tag); t != nil {
		tag = *t
	}

	// Derivation and insert share one transaction so the suffix is computed
	// from the snapshot the insert runs against.
	var created *domain.Project
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		displayID := trimOrNil(input.DisplayID)
		if displayID == nil {
			derived, err := s.NextDisplayID(ctx, input.ClientID)
			if err != nil {
				return err
			}
			displayID = &derived.DisplayID
		}

		p, err := s.projects.Create(ctx, &domain.Project{
			ClientID:    input.ClientID,
			DisplayID:   displayID,
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			Status:      status,
			ProjectDate: input.ProjectDate,
			Location:    trimOrNil(input.Location),
			Tag:         tag,
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("client_id", created.ClientID.String()),
		slog.Any("display_id", created.DisplayID),
	)

	return created, nil
}
