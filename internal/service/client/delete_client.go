package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// DeleteClient removes a client together with its projects and documents.
func (s *Service) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	if clientID == uuid.Nil {
		return domain.NewValidationError("client_id", "required")
	}

	if err := s.clients.Delete(ctx, clientID); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	s.log.InfoContext(ctx, "client deleted",
		slog.String("client_id", clientID.String()),
	)

	return nil
}
