package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents work performed for a client. DisplayID is the composite
// human-readable identifier ("<clientCode>-<suffix>"); it is advisory at
// creation time and opaque once stored — the server never re-derives it.
type Project struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	DisplayID   *string
	Name        string
	Description *string
	Status      ProjectStatus
	ProjectDate *time.Time
	Location    *string
	Tag         string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ClientName is populated by list/detail queries.
	ClientName string
	// DocumentCount is populated by list queries.
	DocumentCount int
}

// DefaultProjectTag is assigned when a project is created without a tag.
const DefaultProjectTag = "MISC"
