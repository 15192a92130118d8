package auth

import (
	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// ValidateToken checks a bearer token and returns the user ID it carries.
// Any parse or signature failure maps to domain.ErrUnauthorized.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
