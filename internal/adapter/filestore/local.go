// Package filestore persists uploaded document files on local disk.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// Local stores files under a single base directory. Stored names are random
// UUIDs with the original extension, so user-supplied names never touch the
// filesystem.
type Local struct {
	baseDir      string
	maxSizeBytes int64
}

// NewLocal creates the base directory if needed and returns a store.
func NewLocal(baseDir string, maxSizeBytes int64) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", baseDir, err)
	}
	return &Local{baseDir: baseDir, maxSizeBytes: maxSizeBytes}, nil
}

// Save writes the reader's content to a new file and returns its metadata.
// Returns domain.ErrValidation when the content exceeds the size limit;
// the partial file is removed.
func (s *Local) Save(r io.Reader, originalName, mimeType string) (*domain.FileInfo, error) {
	stored := uuid.New().String() + sanitizeExt(originalName)
	path := filepath.Join(s.baseDir, stored)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file %s: %w", path, err)
	}

	// Copy one byte past the limit to detect oversized uploads.
	written, err := io.Copy(f, io.LimitReader(r, s.maxSizeBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write file %s: %w", path, err)
	}
	if written > s.maxSizeBytes {
		os.Remove(path)
		return nil, fmt.Errorf("file exceeds %d bytes: %w", s.maxSizeBytes, domain.ErrValidation)
	}

	return &domain.FileInfo{
		Name:      originalName,
		Path:      stored,
		MimeType:  mimeType,
		SizeBytes: written,
	}, nil
}

// Open returns a reader for a previously stored file.
// Returns domain.ErrNotFound if the file is missing from disk.
func (s *Local) Open(storedPath string) (io.ReadCloser, error) {
	path, err := s.resolve(storedPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %s: %w", storedPath, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", storedPath, err)
	}
	return f, nil
}

// Remove deletes a stored file. A missing file is not an error, so document
// deletion stays idempotent.
func (s *Local) Remove(storedPath string) error {
	path, err := s.resolve(storedPath)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file %s: %w", storedPath, err)
	}
	return nil
}

// List returns the stored names of all files currently on disk.
func (s *Local) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// resolve joins the stored name with the base directory, rejecting anything
// that would escape it.
func (s *Local) resolve(storedPath string) (string, error) {
	name := filepath.Base(filepath.Clean(storedPath))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file path %q: %w", storedPath, domain.ErrValidation)
	}
	return filepath.Join(s.baseDir, name), nil
}

// sanitizeExt extracts a safe lowercase extension from the original name.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
