// Package auth implements login and token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service provides authentication operations.
type Service struct {
	users userRepo
	jwt   jwtManager
	log   *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		log:   log.With("service", "auth"),
	}
}

// LoginResult holds the outcome of a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}
