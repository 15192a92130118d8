package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// CreateClient creates a new client. The custom ID is optional; projects for
// a client without one get the placeholder code in their display IDs until a
// code is assigned.
func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.clients.Create(ctx, &domain.Client{
		CustomID: trimOrNil(input.CustomID),
		Name:     strings.TrimSpace(input.Name),
		Email:    trimOrNil(input.Email),
		Phone:    trimOrNil(input.Phone),
		Company:  trimOrNil(input.Company),
		Notes:    trimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.log.InfoContext(ctx, "client created",
		slog.String("client_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
