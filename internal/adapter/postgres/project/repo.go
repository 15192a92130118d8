// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

const table = "projects"

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN read queries
// ---------------------------------------------------------------------------

const listSQL = `
SELECT
    p.id, p.client_id, p.display_id, p.name, p.description, p.status,
    p.project_date, p.location, p.tag, p.created_at, p.updated_at,
    c.name AS client_name,
    count(d.id) AS document_count
FROM projects p
JOIN clients c ON c.id = p.client_id
LEFT JOIN documents d ON d.project_id = p.id
%s
GROUP BY p.id, c.name
ORDER BY p.created_at DESC`

const getByIDSQL = `
SELECT
    p.id, p.client_id, p.display_id, p.name, p.description, p.status,
    p.project_date, p.location, p.tag, p.created_at, p.updated_at,
    c.name AS client_name,
    count(d.id) AS document_count
FROM projects p
JOIN clients c ON c.id = p.client_id
LEFT JOIN documents d ON d.project_id = p.id
WHERE p.id = $1
GROUP BY p.id, c.name`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns projects ordered by created_at DESC, each with its client name
// and document count. A non-nil clientID restricts the result to that client.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		query = fmt.Sprintf(listSQL, "")
		args  []any
	)
	if clientID != nil {
		query = fmt.Sprintf(listSQL, "WHERE p.client_id = $1")
		args = append(args, *clientID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProjectFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetByID returns a project by primary key with client name and document count.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, postgres.MapError(err, "project", id)
		}
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	p, err := scanProjectFromRows(rows)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	return &p, nil
}

// ListDisplayIDs returns the non-null display IDs of all projects under a
// client. Used to derive the next sequential suffix.
func (r *Repo) ListDisplayIDs(ctx context.Context, clientID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("display_id").
		From(table).
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.NotEq{"display_id": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list display ids: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list project display ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan display id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list project display ids: %w", err)
	}

	return ids, nil
}

// Count returns the total number of projects.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM projects").Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new project and returns it with client name populated.
// Returns domain.ErrNotFound if the client does not exist and
// domain.ErrConflict if the display ID is already taken under the client.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("client_id", "display_id", "name", "description", "status",
			"project_date", "location", "tag").
		Values(p.ClientID, p.DisplayID, p.Name, p.Description, p.Status.String(),
			p.ProjectDate, p.Location, p.Tag).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create project: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	return r.GetByID(ctx, id)
}

// Update replaces a project's editable fields.
// Returns domain.ErrNotFound if the project does not exist and
// domain.ErrConflict on a display ID collision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("client_id", p.ClientID).
		Set("display_id", p.DisplayID).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("status", p.Status.String()).
		Set("project_date", p.ProjectDate).
		Set("location", p.Location).
		Set("tag", p.Tag).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a project. Documents are removed by FK CASCADE.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanProjectFromRows(rows pgx.Rows) (domain.Project, error) {
	var (
		p             domain.Project
		status        string
		documentCount int64
	)

	if err := rows.Scan(
		&p.ID, &p.ClientID, &p.DisplayID, &p.Name, &p.Description, &status,
		&p.ProjectDate, &p.Location, &p.Tag, &p.CreatedAt, &p.UpdatedAt,
		&p.ClientName, &documentCount,
	); err != nil {
		return domain.Project{}, err
	}

	p.Status = domain.ProjectStatus(status)
	p.DocumentCount = int(documentCount)
	return p, nil
}
