package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// NextDisplayID derives the next sequential display ID for a project under
// the given client: "<clientCode>-<NNN>", with the placeholder code when the
// client has no custom ID yet.
//
// The value is advisory. Nothing is reserved; a concurrent create can win the
// same suffix and the later insert fails with domain.ErrConflict.
func (s *Service) NextDisplayID(ctx context.Context, clientID uuid.UUID) (domain.NextID, error) {
	if clientID == uuid.Nil {
		return domain.NextID{}, domain.NewValidationError("client_id", "required")
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return domain.NextID{}, fmt.Errorf("get client: %w", err)
	}

	existing, err := s.projects.ListDisplayIDs(ctx, clientID)
	if err != nil {
		return domain.NextID{}, fmt.Errorf("list display ids: %w", err)
	}

	suffix := domain.NextSuffix(existing, domain.ProjectSuffixWidth)
	return domain.NextID{
		Suffix:    suffix,
		DisplayID: domain.ComposeDisplayID(client.CustomID, suffix),
	}, nil
}
