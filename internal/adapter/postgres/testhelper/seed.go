package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mozuk/mozuk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedUser creates a user with a fixed bcrypt hash of "password123".
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:    uuid.New(),
		Email: "testuser-" + suffix + "@example.com",
		// bcrypt("password123"), cost 10
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Name:         "Test User " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedClient creates a client with a custom ID assigned.
func SeedClient(t *testing.T, pool *pgxpool.Pool) domain.Client {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	client := domain.Client{
		ID:        uuid.New(),
		CustomID:  ptr("C" + suffix[:4]),
		Name:      "Test Client " + suffix,
		Email:     ptr("client-" + suffix + "@example.com"),
		Phone:     ptr("+1-555-0100"),
		Company:   ptr("Test Company " + suffix),
		Notes:     ptr("seeded"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO clients (id, custom_id, name, email, phone, company, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		client.ID, client.CustomID, client.Name, client.Email, client.Phone,
		client.Company, client.Notes, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert: %v", err)
	}

	return client
}

// SeedProject creates a project under the given client with the given display ID
// (nil for an unassigned one).
func SeedProject(t *testing.T, pool *pgxpool.Pool, clientID uuid.UUID, displayID *string) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:        uuid.New(),
		ClientID:  clientID,
		DisplayID: displayID,
		Name:      "Test Project " + suffix,
		Status:    domain.ProjectStatusOnGoing,
		Tag:       domain.DefaultProjectTag,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, client_id, display_id, name, status, tag, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		project.ID, project.ClientID, project.DisplayID, project.Name,
		string(project.Status), project.Tag, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return project
}

// SeedInvoice creates an INVOICE document under the given project.
// paid may be nil for the undetermined state.
func SeedInvoice(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, amount string, paid *bool) domain.Document {
	t.Helper()

	amt := decimal.RequireFromString(amount)
	return seedDocument(t, pool, projectID, domain.DocumentTypeInvoice, &amt, paid)
}

// SeedDocument creates a non-invoice document under the given project.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, docType domain.DocumentType) domain.Document {
	t.Helper()
	return seedDocument(t, pool, projectID, docType, nil, nil)
}

func seedDocument(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, docType domain.DocumentType, amount *decimal.Decimal, paid *bool) domain.Document {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	doc := domain.Document{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Test Document " + suffix,
		Type:      docType,
		Status:    domain.DocumentStatusDraft,
		Amount:    amount,
		Paid:      paid,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var amountArg any
	if amount != nil {
		amountArg = amount.String()
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, project_id, name, type, status, amount, paid, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.ProjectID, doc.Name, string(doc.Type), string(doc.Status),
		amountArg, doc.Paid, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedDocument insert: %v", err)
	}

	return doc
}
