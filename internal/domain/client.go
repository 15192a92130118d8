package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer the business performs projects for.
// CustomID is the short external code (e.g. "1001") used as the first
// segment of project display IDs; nil means no code has been assigned yet.
type Client struct {
	ID        uuid.UUID
	CustomID  *string
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProjectCount is populated by list queries.
	ProjectCount int
	// Projects is populated by detail queries.
	Projects []Project
}
