package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// UploadFile stores a file for a document and records its metadata.
// Re-uploading replaces the previous file.
func (s *Service) UploadFile(ctx context.Context, documentID uuid.UUID, r io.Reader, originalName, mimeType string) (*domain.Document, error) {
	if documentID == uuid.Nil {
		return nil, domain.NewValidationError("document_id", "required")
	}
	if strings.TrimSpace(originalName) == "" {
		return nil, domain.NewValidationError("file", "filename required")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	info, err := s.files.Save(r, originalName, mimeType)
	if err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	if err := s.documents.SetFile(ctx, documentID, info); err != nil {
		// The row update failed; don't leave the new file orphaned.
		if rmErr := s.files.Remove(info.Path); rmErr != nil {
			s.log.WarnContext(ctx, "failed to remove file after update failure",
				slog.String("path", info.Path),
				slog.Any("error", rmErr),
			)
		}
		return nil, fmt.Errorf("set file: %w", err)
	}

	if doc.File != nil && doc.File.Path != info.Path {
		if err := s.files.Remove(doc.File.Path); err != nil {
			s.log.WarnContext(ctx, "failed to remove replaced file",
				slog.String("path", doc.File.Path),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "document file uploaded",
		slog.String("document_id", documentID.String()),
		slog.String("file_name", info.Name),
		slog.Int64("size_bytes", info.SizeBytes),
	)

	return s.documents.GetByID(ctx, documentID)
}

// DownloadFile opens the stored file of a document for streaming.
// Returns domain.ErrNotFound when the document has no file.
func (s *Service) DownloadFile(ctx context.Context, documentID uuid.UUID) (io.ReadCloser, *domain.FileInfo, error) {
	if documentID == uuid.Nil {
		return nil, nil, domain.NewValidationError("document_id", "required")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get document: %w", err)
	}
	if doc.File == nil {
		return nil, nil, fmt.Errorf("document %s has no file: %w", documentID, domain.ErrNotFound)
	}

	r, err := s.files.Open(doc.File.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}

	return r, doc.File, nil
}
