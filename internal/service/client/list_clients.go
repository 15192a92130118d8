package client

import (
	"context"
	"fmt"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// ListClients returns all clients with their project counts.
func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}
