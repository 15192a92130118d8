package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/internal/service/client"
)

type clientServiceMock struct {
	ListClientsFunc  func(ctx context.Context) ([]domain.Client, error)
	GetClientFunc    func(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	CreateClientFunc func(ctx context.Context, input client.CreateClientInput) (*domain.Client, error)
	UpdateClientFunc func(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClientFunc func(ctx context.Context, clientID uuid.UUID) error
}

var _ clientService = &clientServiceMock{}

func (m *clientServiceMock) ListClients(ctx context.Context) ([]domain.Client, error) {
	return m.ListClientsFunc(ctx)
}

func (m *clientServiceMock) GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	return m.GetClientFunc(ctx, clientID)
}

func (m *clientServiceMock) CreateClient(ctx context.Context, input client.CreateClientInput) (*domain.Client, error) {
	return m.CreateClientFunc(ctx, input)
}

func (m *clientServiceMock) UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error) {
	return m.UpdateClientFunc(ctx, input)
}

func (m *clientServiceMock) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	return m.DeleteClientFunc(ctx, clientID)
}

// newIDRequest builds a request whose {id} path value is already bound, the
// way the router would after matching "/api/clients/{id}".
func newIDRequest(method, target string, id uuid.UUID, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.SetPathValue("id", id.String())
	return r
}

func TestClientList_ReturnsAll(t *testing.T) {
	t.Parallel()

	customID := "1001"
	h := NewClientHandler(&clientServiceMock{
		ListClientsFunc: func(_ context.Context) ([]domain.Client, error) {
			return []domain.Client{
				{ID: uuid.New(), Name: "Acme", CustomID: &customID, ProjectCount: 2},
				{ID: uuid.New(), Name: "Globex"},
			}, nil
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []clientResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(resp))
	}
	if resp[0].CustomID == nil || *resp[0].CustomID != "1001" {
		t.Errorf("expected customId '1001', got %v", resp[0].CustomID)
	}
	if resp[0].ProjectCount != 2 {
		t.Errorf("expected projectCount 2, got %d", resp[0].ProjectCount)
	}
}

func TestClientGet_NotFound(t *testing.T) {
	t.Parallel()

	h := NewClientHandler(&clientServiceMock{
		GetClientFunc: func(_ context.Context, _ uuid.UUID) (*domain.Client, error) {
			return nil, domain.ErrNotFound
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Get(rec, newIDRequest(http.MethodGet, "/api/clients/x", uuid.New(), ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestClientGet_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewClientHandler(&clientServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/clients/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestClientCreate_Returns201(t *testing.T) {
	t.Parallel()

	h := NewClientHandler(&clientServiceMock{
		CreateClientFunc: func(_ context.Context, input client.CreateClientInput) (*domain.Client, error) {
			return &domain.Client{ID: uuid.New(), Name: input.Name}, nil
		},
	}, testLogger())

	body := strings.NewReader(`{"name":"Acme","email":"billing@acme.test"}`)
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/clients", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp clientResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Acme" {
		t.Errorf("expected name 'Acme', got %q", resp.Name)
	}
}

func TestClientCreate_ValidationError(t *testing.T) {
	t.Parallel()

	h := NewClientHandler(&clientServiceMock{
		CreateClientFunc: func(_ context.Context, _ client.CreateClientInput) (*domain.Client, error) {
			return nil, domain.NewValidationError("name", "is required")
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestClientUpdate_DuplicateCustomID(t *testing.T) {
	t.Parallel()

	h := NewClientHandler(&clientServiceMock{
		UpdateClientFunc: func(_ context.Context, _ client.UpdateClientInput) (*domain.Client, error) {
			return nil, domain.ErrConflict
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Update(rec, newIDRequest(http.MethodPut, "/api/clients/x", uuid.New(), `{"name":"Acme","customId":"1001"}`))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestClientDelete_Returns204(t *testing.T) {
	t.Parallel()

	deleted := false
	h := NewClientHandler(&clientServiceMock{
		DeleteClientFunc: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Delete(rec, newIDRequest(http.MethodDelete, "/api/clients/x", uuid.New(), ""))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if !deleted {
		t.Error("expected delete to be called")
	}
}
