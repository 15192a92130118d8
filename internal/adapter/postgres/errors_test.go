package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "client", uuid.Nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "client", uuid.New())
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", got)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	got := MapError(pgErr, "user", uuid.New())
	if !errors.Is(got, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", got)
	}
}

func TestMapError_DisplayIDRace(t *testing.T) {
	t.Parallel()

	tests := []string{
		"projects_client_id_display_id_key",
		"documents_project_id_display_id_key",
	}
	for _, constraint := range tests {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: constraint}
		got := MapError(pgErr, "project", uuid.New())
		if !errors.Is(got, domain.ErrConflict) {
			t.Errorf("%s: expected ErrConflict, got %v", constraint, got)
		}
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23503"}
	got := MapError(pgErr, "project", uuid.New())
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", got)
	}
}

func TestMapError_ContextPassThrough(t *testing.T) {
	t.Parallel()

	got := MapError(context.Canceled, "document", uuid.New())
	if !errors.Is(got, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("context errors must not map to domain errors")
	}
}

func TestMapError_Unknown(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	got := MapError(base, "client", uuid.New())
	if !errors.Is(got, base) {
		t.Errorf("expected wrapped base error, got %v", got)
	}
}
