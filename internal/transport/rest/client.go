package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/internal/service/client"
)

// clientService defines the minimal interface needed by ClientHandler.
type clientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	CreateClient(ctx context.Context, input client.CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID uuid.UUID) error
}

// ClientHandler serves client REST endpoints.
type ClientHandler struct {
	svc clientService
	log *slog.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc clientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: logger.With("handler", "client")}
}

type clientRequest struct {
	CustomID *string `json:"customId"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Notes    *string `json:"notes"`
}

type clientResponse struct {
	ID           string            `json:"id"`
	CustomID     *string           `json:"customId"`
	Name         string            `json:"name"`
	Email        *string           `json:"email"`
	Phone        *string           `json:"phone"`
	Company      *string           `json:"company"`
	Notes        *string           `json:"notes"`
	ProjectCount int               `json:"projectCount"`
	Projects     []projectResponse `json:"projects,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]clientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, toClientResponse(&clients[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.CreateClient(r.Context(), client.CreateClientInput{
		CustomID: req.CustomID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

// Update handles PUT /api/clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.UpdateClient(r.Context(), client.UpdateClientInput{
		ClientID: id,
		CustomID: req.CustomID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteClient(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		ID:           c.ID.String(),
		CustomID:     c.CustomID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Company:      c.Company,
		Notes:        c.Notes,
		ProjectCount: c.ProjectCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for i := range c.Projects {
		resp.Projects = append(resp.Projects, toProjectResponse(&c.Projects[i]))
	}
	return resp
}
