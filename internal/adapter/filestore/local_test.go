package filestore_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mozuk/mozuk-backend/internal/adapter/filestore"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

func newStore(t *testing.T, maxSize int64) *filestore.Local {
	t.Helper()
	store, err := filestore.NewLocal(t.TempDir(), maxSize)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return store
}

func TestLocal_SaveAndOpen(t *testing.T) {
	t.Parallel()
	store := newStore(t, 1024)

	info, err := store.Save(strings.NewReader("invoice body"), "invoice.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	if info.Name != "invoice.pdf" {
		t.Errorf("Name mismatch: got %q", info.Name)
	}
	if !strings.HasSuffix(info.Path, ".pdf") {
		t.Errorf("stored path should keep extension: got %q", info.Path)
	}
	if info.Path == "invoice.pdf" {
		t.Error("stored path must not reuse the original name")
	}
	if info.SizeBytes != int64(len("invoice body")) {
		t.Errorf("SizeBytes mismatch: got %d", info.SizeBytes)
	}
	if info.MimeType != "application/pdf" {
		t.Errorf("MimeType mismatch: got %q", info.MimeType)
	}

	r, err := store.Open(info.Path)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "invoice body" {
		t.Errorf("content mismatch: got %q", body)
	}
}

func TestLocal_Save_ExceedsLimit(t *testing.T) {
	t.Parallel()
	store := newStore(t, 5)

	_, err := store.Save(strings.NewReader("this is too large"), "big.bin", "application/octet-stream")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("oversized upload left %d files on disk", len(names))
	}
}

func TestLocal_Save_ExactLimit(t *testing.T) {
	t.Parallel()
	store := newStore(t, 5)

	info, err := store.Save(strings.NewReader("12345"), "ok.txt", "text/plain")
	if err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	if info.SizeBytes != 5 {
		t.Errorf("SizeBytes mismatch: got %d, want 5", info.SizeBytes)
	}
}

func TestLocal_Open_NotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t, 1024)

	_, err := store.Open("missing.pdf")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocal_Open_RejectsTraversal(t *testing.T) {
	t.Parallel()
	store := newStore(t, 1024)

	// Base is stripped, so this resolves inside the store and simply does
	// not exist; it must never reach /etc/passwd.
	_, err := store.Open("../../etc/passwd")
	if err == nil {
		t.Fatal("expected error for traversal path")
	}
}

func TestLocal_Remove_Idempotent(t *testing.T) {
	t.Parallel()
	store := newStore(t, 1024)

	info, err := store.Save(strings.NewReader("x"), "a.txt", "text/plain")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove(info.Path); err != nil {
		t.Fatalf("Remove: unexpected error: %v", err)
	}
	// Second remove of the same file is a no-op.
	if err := store.Remove(info.Path); err != nil {
		t.Fatalf("Remove (second): unexpected error: %v", err)
	}

	if _, err := store.Open(info.Path); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestLocal_List(t *testing.T) {
	t.Parallel()
	store := newStore(t, 1024)

	if _, err := store.Save(strings.NewReader("a"), "a.txt", "text/plain"); err != nil {
		t.Fatalf("Save a: %v", err)
	}
	if _, err := store.Save(strings.NewReader("b"), "b.txt", "text/plain"); err != nil {
		t.Fatalf("Save b: %v", err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 files, got %d", len(names))
	}
}
