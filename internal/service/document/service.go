// Package document implements document management, display ID derivation,
// and file upload/download.
package document

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

type documentRepo interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListDisplayIDs(ctx context.Context, projectID uuid.UUID) ([]string, error)
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, id uuid.UUID, d *domain.Document) (*domain.Document, error)
	SetFile(ctx context.Context, id uuid.UUID, file *domain.FileInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type fileStore interface {
	Save(r io.Reader, originalName, mimeType string) (*domain.FileInfo, error)
	Open(storedPath string) (io.ReadCloser, error)
	Remove(storedPath string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides document management operations.
type Service struct {
	documents documentRepo
	projects  projectRepo
	files     fileStore
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Document service.
func NewService(log *slog.Logger, documents documentRepo, projects projectRepo, files fileStore, tx txManager) *Service {
	return &Service{
		documents: documents,
		projects:  projects,
		files:     files,
		tx:        tx,
		log:       log.With("service", "document"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
