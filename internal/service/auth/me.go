package auth

import (
	"context"
	"fmt"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/pkg/ctxutil"
)

// Me returns the profile of the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
