package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// UpdateClient replaces a client's editable fields. Changing the custom ID
// does not rewrite display IDs of existing projects; they stay as assigned.
func (s *Service) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.clients.Update(ctx, input.ClientID, &domain.Client{
		CustomID: trimOrNil(input.CustomID),
		Name:     strings.TrimSpace(input.Name),
		Email:    trimOrNil(input.Email),
		Phone:    trimOrNil(input.Phone),
		Company:  trimOrNil(input.Company),
		Notes:    trimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("client_id", updated.ID.String()),
	)

	return updated, nil
}
