package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mozuk/mozuk-backend/internal/adapter/postgres/project"
	"github.com/mozuk/mozuk-backend/internal/adapter/postgres/testhelper"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

func newRepo(t *testing.T) (*project.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return project.New(pool), pool
}

func ptr[T any](v T) *T { return &v }

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)

	created, err := repo.Create(ctx, &domain.Project{
		ClientID:  cl.ID,
		DisplayID: ptr(*cl.CustomID + "-001"),
		Name:      "Roof Inspection",
		Status:    domain.ProjectStatusOnGoing,
		Tag:       domain.DefaultProjectTag,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil project ID")
	}
	if created.DisplayID == nil || *created.DisplayID != *cl.CustomID+"-001" {
		t.Errorf("DisplayID mismatch: got %v", created.DisplayID)
	}
	if created.ClientName != cl.Name {
		t.Errorf("ClientName mismatch: got %q, want %q", created.ClientName, cl.Name)
	}
	if created.DocumentCount != 0 {
		t.Errorf("DocumentCount mismatch: got %d, want 0", created.DocumentCount)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, created.ID)
	}
}

func TestRepo_Create_MissingClient(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.Create(context.Background(), &domain.Project{
		ClientID: uuid.New(),
		Name:     "Orphan",
		Status:   domain.ProjectStatusOnGoing,
		Tag:      domain.DefaultProjectTag,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing client, got %v", err)
	}
}

func TestRepo_Create_DuplicateDisplayID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)
	testhelper.SeedProject(t, pool, cl.ID, ptr("1001-005"))

	_, err := repo.Create(ctx, &domain.Project{
		ClientID:  cl.ID,
		DisplayID: ptr("1001-005"),
		Name:      "Colliding",
		Status:    domain.ProjectStatusOnGoing,
		Tag:       domain.DefaultProjectTag,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate display ID, got %v", err)
	}
}

func TestRepo_Create_SameDisplayIDDifferentClients(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl1 := testhelper.SeedClient(t, pool)
	cl2 := testhelper.SeedClient(t, pool)
	testhelper.SeedProject(t, pool, cl1.ID, ptr("XXXX-001"))

	// Uniqueness is scoped per client.
	_, err := repo.Create(ctx, &domain.Project{
		ClientID:  cl2.ID,
		DisplayID: ptr("XXXX-001"),
		Name:      "Other Client Project",
		Status:    domain.ProjectStatusOnGoing,
		Tag:       domain.DefaultProjectTag,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
}

func TestRepo_List_FilterByClient(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl1 := testhelper.SeedClient(t, pool)
	cl2 := testhelper.SeedClient(t, pool)
	p1 := testhelper.SeedProject(t, pool, cl1.ID, nil)
	testhelper.SeedProject(t, pool, cl2.ID, nil)

	projects, err := repo.List(ctx, &cl1.ID)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project for client, got %d", len(projects))
	}
	if projects[0].ID != p1.ID {
		t.Errorf("project mismatch: got %s, want %s", projects[0].ID, p1.ID)
	}
	if projects[0].ClientName != cl1.Name {
		t.Errorf("ClientName mismatch: got %q, want %q", projects[0].ClientName, cl1.Name)
	}
}

func TestRepo_List_IncludesDocumentCount(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)
	p := testhelper.SeedProject(t, pool, cl.ID, nil)
	testhelper.SeedDocument(t, pool, p.ID, domain.DocumentTypeReport)
	testhelper.SeedDocument(t, pool, p.ID, domain.DocumentTypeOthers)

	projects, err := repo.List(ctx, &cl.ID)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].DocumentCount != 2 {
		t.Errorf("DocumentCount mismatch: got %d, want 2", projects[0].DocumentCount)
	}
}

func TestRepo_ListDisplayIDs_SkipsNull(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)
	testhelper.SeedProject(t, pool, cl.ID, ptr("1001-001"))
	testhelper.SeedProject(t, pool, cl.ID, ptr("1001-007"))
	testhelper.SeedProject(t, pool, cl.ID, nil)

	ids, err := repo.ListDisplayIDs(ctx, cl.ID)
	if err != nil {
		t.Fatalf("ListDisplayIDs: unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 display IDs, got %d (%v)", len(ids), ids)
	}
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)
	p := testhelper.SeedProject(t, pool, cl.ID, nil)

	updated, err := repo.Update(ctx, p.ID, &domain.Project{
		ClientID:  cl.ID,
		DisplayID: ptr("1001-099"),
		Name:      "Renamed Project",
		Status:    domain.ProjectStatusCompleteSolved,
		Tag:       "INSPECTION",
	})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.Name != "Renamed Project" {
		t.Errorf("Name mismatch: got %q", updated.Name)
	}
	if updated.Status != domain.ProjectStatusCompleteSolved {
		t.Errorf("Status mismatch: got %s", updated.Status)
	}
	if updated.DisplayID == nil || *updated.DisplayID != "1001-099" {
		t.Errorf("DisplayID mismatch: got %v", updated.DisplayID)
	}
	if updated.Tag != "INSPECTION" {
		t.Errorf("Tag mismatch: got %q", updated.Tag)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	cl := testhelper.SeedClient(t, pool)

	_, err := repo.Update(context.Background(), uuid.New(), &domain.Project{
		ClientID: cl.ID,
		Name:     "Ghost",
		Status:   domain.ProjectStatusOnGoing,
		Tag:      domain.DefaultProjectTag,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete_CascadesToDocuments(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	cl := testhelper.SeedClient(t, pool)
	p := testhelper.SeedProject(t, pool, cl.ID, nil)
	doc := testhelper.SeedDocument(t, pool, p.ID, domain.DocumentTypeReport)

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM documents WHERE id = $1", doc.ID).Scan(&count); err != nil {
		t.Fatalf("count documents: %v", err)
	}
	if count != 0 {
		t.Errorf("expected document to be cascade-deleted, found %d", count)
	}
}
