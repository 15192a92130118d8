// Package document implements the Document repository using PostgreSQL.
package document

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

const table = "documents"

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN read queries
// ---------------------------------------------------------------------------

const selectColumns = `
    d.id, d.project_id, d.display_id, d.name, d.doc_date, d.type, d.status,
    d.link, d.file_name, d.file_path, d.mime_type, d.size_bytes,
    d.amount, d.paid, d.created_at, d.updated_at,
    p.name AS project_name`

const listSQL = `
SELECT` + selectColumns + `
FROM documents d
JOIN projects p ON p.id = d.project_id
%s
ORDER BY d.created_at DESC`

const getByIDSQL = `
SELECT` + selectColumns + `
FROM documents d
JOIN projects p ON p.id = d.project_id
WHERE d.id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns documents ordered by created_at DESC, each with its project
// name. A non-nil projectID restricts the result to that project.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		query = fmt.Sprintf(listSQL, "")
		args  []any
	)
	if projectID != nil {
		query = fmt.Sprintf(listSQL, "WHERE d.project_id = $1")
		args = append(args, *projectID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		d, err := scanDocumentFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// GetByID returns a document by primary key with project name populated.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, postgres.MapError(err, "document", id)
		}
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	d, err := scanDocumentFromRows(rows)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}

	return &d, nil
}

// ListDisplayIDs returns the non-null display IDs of all documents under a
// project. Used to derive the next sequential suffix.
func (r *Repo) ListDisplayIDs(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("display_id").
		From(table).
		Where(squirrel.Eq{"project_id": projectID}).
		Where(squirrel.NotEq{"display_id": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list display ids: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list document display ids: %w", err)
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
		return nil, fmt.Errorf("list document display ids: %w", err)
	}

	return ids, nil
}

// ListFilePaths returns the stored file paths of all documents that have an
// attached file. Used by the orphaned-upload sweep.
func (r *Repo) ListFilePaths(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("file_path").
		From(table).
		Where(squirrel.NotEq{"file_path": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list file paths: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list document file paths: %w", err)
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan file path: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list document file paths: %w", err)
	}

	return paths, nil
}

// Count returns the total number of documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM documents").Scan(&count); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new document and returns it with project name populated.
// Returns domain.ErrNotFound if the project does not exist and
// domain.ErrConflict if the display ID is already taken under the project.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("project_id", "display_id", "name", "doc_date", "type", "status",
			"link", "amount", "paid").
		Values(d.ProjectID, d.DisplayID, d.Name, d.DocDate, d.Type.String(),
			d.Status.String(), d.Link, decimalArg(d.Amount), d.Paid).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create document: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "document", uuid.Nil)
	}

	return r.GetByID(ctx, id)
}

// Update replaces a document's editable fields. File columns are managed
// separately by SetFile. Returns domain.ErrNotFound if the document does not
// exist and domain.ErrConflict on a display ID collision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, d *domain.Document) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("display_id", d.DisplayID).
		Set("name", d.Name).
		Set("doc_date", d.DocDate).
		Set("type", d.Type.String()).
		Set("status", d.Status.String()).
		Set("link", d.Link).
		Set("amount", decimalArg(d.Amount)).
		Set("paid", d.Paid).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update document: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// SetFile records the stored file for a document.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) SetFile(ctx context.Context, id uuid.UUID, file *domain.FileInfo) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("file_name", file.Name).
		Set("file_path", file.Path).
		Set("mime_type", file.MimeType).
		Set("size_bytes", file.SizeBytes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set file: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a document.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete document: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanDocumentFromRows(rows pgx.Rows) (domain.Document, error) {
	var (
		d         domain.Document
		docType   string
		status    string
		fileName  *string
		filePath  *string
		mimeType  *string
		sizeBytes *int64
		amount    pgtype.Numeric
	)

	if err := rows.Scan(
		&d.ID, &d.ProjectID, &d.DisplayID, &d.Name, &d.DocDate, &docType, &status,
		&d.Link, &fileName, &filePath, &mimeType, &sizeBytes,
		&amount, &d.Paid, &d.CreatedAt, &d.UpdatedAt,
		&d.ProjectName,
	); err != nil {
		return domain.Document{}, err
	}

	d.Type = domain.DocumentType(docType)
	d.Status = domain.DocumentStatus(status)
	d.Amount = numericToDecimal(amount)

	if fileName != nil && filePath != nil {
		d.File = &domain.FileInfo{
			Name: *fileName,
			Path: *filePath,
		}
		if mimeType != nil {
			d.File.MimeType = *mimeType
		}
		if sizeBytes != nil {
			d.File.SizeBytes = *sizeBytes
		}
	}

	return d, nil
}

// ---------------------------------------------------------------------------
// Decimal helpers
// ---------------------------------------------------------------------------

// decimalArg converts a *decimal.Decimal to a numeric parameter (nil -> NULL).
// The value is passed as text; PostgreSQL parses it into numeric(12,2).
func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// numericToDecimal converts a scanned pgtype.Numeric to *decimal.Decimal
// (NULL -> nil). NaN never appears on a numeric(12,2) column.
func numericToDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}
