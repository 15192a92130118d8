package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Client, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	CreateFunc  func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *clientRepoMock) List(ctx context.Context) ([]domain.Client, error) {
	return m.ListFunc(ctx)
}
func (m *clientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *clientRepoMock) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return m.CreateFunc(ctx, c)
}
func (m *clientRepoMock) Update(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error) {
	return m.UpdateFunc(ctx, id, c)
}
func (m *clientRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	ListFunc func(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error)
}

func (m *projectRepoMock) List(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error) {
	return m.ListFunc(ctx, clientID)
}

func ptr[T any](v T) *T { return &v }

func TestCreateClient_Success(t *testing.T) {
	t.Parallel()

	clients := &clientRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Client) (*domain.Client, error) {
			created := *c
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewService(slog.Default(), clients, &projectRepoMock{})

	created, err := svc.CreateClient(context.Background(), CreateClientInput{
		CustomID: ptr(" 1001 "),
		Name:     "  Acme Corp  ",
		Email:    ptr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Acme Corp" {
		t.Errorf("Name not trimmed: got %q", created.Name)
	}
	if created.CustomID == nil || *created.CustomID != "1001" {
		t.Errorf("CustomID not trimmed: got %v", created.CustomID)
	}
	// Blank optional fields collapse to nil.
	if created.Email != nil {
		t.Errorf("expected nil Email, got %v", created.Email)
	}
}

func TestCreateClient_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &clientRepoMock{}, &projectRepoMock{})

	tests := []struct {
		name  string
		input CreateClientInput
	}{
		{"empty name", CreateClientInput{}},
		{"whitespace name", CreateClientInput{Name: "   "}},
		{"name too long", CreateClientInput{Name: strings.Repeat("a", 201)}},
		{"custom id too long", CreateClientInput{Name: "ok", CustomID: ptr(strings.Repeat("1", 21))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateClient(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGetClient_AttachesProjects(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()
	clients := &clientRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
			return &domain.Client{ID: id, Name: "Acme"}, nil
		},
	}
	projects := &projectRepoMock{
		ListFunc: func(ctx context.Context, cid *uuid.UUID) ([]domain.Project, error) {
			if cid == nil || *cid != clientID {
				t.Errorf("projects listed for wrong client: %v", cid)
			}
			return []domain.Project{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}
	svc := NewService(slog.Default(), clients, projects)

	got, err := svc.GetClient(context.Background(), clientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(got.Projects))
	}
	if got.ProjectCount != 2 {
		t.Errorf("ProjectCount mismatch: got %d", got.ProjectCount)
	}
}

func TestGetClient_NotFound(t *testing.T) {
	t.Parallel()

	clients := &clientRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(slog.Default(), clients, &projectRepoMock{})

	_, err := svc.GetClient(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetClient_NilID(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &clientRepoMock{}, &projectRepoMock{})

	_, err := svc.GetClient(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateClient_Success(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()
	clients := &clientRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error) {
			if id != clientID {
				t.Errorf("Update called with wrong ID: %s", id)
			}
			updated := *c
			updated.ID = id
			return &updated, nil
		},
	}
	svc := NewService(slog.Default(), clients, &projectRepoMock{})

	updated, err := svc.UpdateClient(context.Background(), UpdateClientInput{
		ClientID: clientID,
		Name:     "Renamed",
		CustomID: ptr("2002"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Name mismatch: got %q", updated.Name)
	}
}

func TestDeleteClient_Success(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()
	deleted := false
	clients := &clientRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = id == clientID
			return nil
		},
	}
	svc := NewService(slog.Default(), clients, &projectRepoMock{})

	if err := svc.DeleteClient(context.Background(), clientID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("Delete was not called with the client ID")
	}
}

func TestDeleteClient_NilID(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &clientRepoMock{}, &projectRepoMock{})

	err := svc.DeleteClient(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
