// Package client implements the Client repository using PostgreSQL.
package client

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

const table = "clients"

var columns = []string{"id", "custom_id", "name", "email", "phone", "company", "notes", "created_at", "updated_at"}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for aggregate read queries
// ---------------------------------------------------------------------------

const listWithCountsSQL = `
SELECT
    c.id, c.custom_id, c.name, c.email, c.phone, c.company, c.notes,
    c.created_at, c.updated_at,
    count(p.id) AS project_count
FROM clients c
LEFT JOIN projects p ON p.client_id = c.id
GROUP BY c.id
ORDER BY c.created_at DESC`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all clients ordered by created_at DESC, each with its project
// count. Returns an empty slice (not nil) when there are no clients.
func (r *Repo) List(ctx context.Context) ([]domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listWithCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		var projectCount int64
		if err := rows.Scan(
			&c.ID, &c.CustomID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes,
			&c.CreatedAt, &c.UpdatedAt, &projectCount,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c.ProjectCount = int(projectCount)
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

// GetByID returns a client by primary key.
// Returns domain.ErrNotFound if the client does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client: %w", err)
	}

	c, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return c, nil
}

// Count returns the total number of clients.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM clients").Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new client and returns the persisted domain.Client.
func (r *Repo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("custom_id", "name", "email", "phone", "company", "notes").
		Values(c.CustomID, c.Name, c.Email, c.Phone, c.Company, c.Notes).
		Suffix(returningClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create client: %w", err)
	}

	created, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "client", uuid.Nil)
	}

	return created, nil
}

// Update replaces a client's editable fields.
// Returns domain.ErrNotFound if the client does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("custom_id", c.CustomID).
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("company", c.Company).
		Set("notes", c.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update client: %w", err)
	}

	updated, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return updated, nil
}

// Delete removes a client. Projects and their documents are removed by
// FK CASCADE. Returns domain.ErrNotFound if the client does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete client: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

const returningClause = "RETURNING id, custom_id, name, email, phone, company, notes, created_at, updated_at"

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(
		&c.ID, &c.CustomID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
