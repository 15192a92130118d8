// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Masterminds/squirrel"
	postgres "github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email.
// Returns domain.ErrNotFound if no user has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts a user or, when the email is already taken, refreshes the
// password hash and name. Used by the seeder.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("email", "password_hash", "name").
		Values(u.Email, u.PasswordHash, u.Name).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET password_hash = EXCLUDED.password_hash,
			    name = EXCLUDED.name,
			    updated_at = now()
			RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type row interface {
	Scan(dest ...any) error
}

func scanUser(rw row) (*domain.User, error) {
	var (
		u         domain.User
		createdAt time.Time
		updatedAt time.Time
	)

	if err := rw.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt
	return &u, nil
}
