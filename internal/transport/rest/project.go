package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	ListProjects(ctx context.Context, clientID *uuid.UUID) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	NextDisplayID(ctx context.Context, clientID uuid.UUID) (domain.NextID, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type projectRequest struct {
	ClientID    uuid.UUID  `json:"clientId"`
	DisplayID   *string    `json:"displayId"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	ProjectDate *time.Time `json:"projectDate"`
	Location    *string    `json:"location"`
	Tag         *string    `json:"tag"`
}

type projectResponse struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"clientId"`
	DisplayID     *string    `json:"displayId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	ProjectDate   *time.Time `json:"projectDate"`
	Location      *string    `json:"location"`
	Tag           string     `json:"tag"`
	ClientName    string     `json:"clientName,omitempty"`
	DocumentCount int        `json:"documentCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type nextIDResponse struct {
	Suffix    string `json:"suffix"`
	DisplayID string `json:"displayId"`
}

// List handles GET /api/projects with an optional clientId filter.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryUUID(r, "clientId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), clientID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, toProjectResponse(&projects[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := project.CreateProjectInput{
		ClientID:    req.ClientID,
		DisplayID:   req.DisplayID,
		Name:        req.Name,
		Description: req.Description,
		ProjectDate: req.ProjectDate,
		Location:    req.Location,
		Tag:         req.Tag,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}

	p, err := h.svc.CreateProject(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := project.UpdateProjectInput{
		ProjectID:   id,
		ClientID:    req.ClientID,
		DisplayID:   req.DisplayID,
		Name:        req.Name,
		Description: req.Description,
		ProjectDate: req.ProjectDate,
		Location:    req.Location,
		Tag:         req.Tag,
	}
	if req.Status != nil {
		input.Status = domain.ProjectStatus(*req.Status)
	}

	p, err := h.svc.UpdateProject(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NextID handles GET /api/projects/next-id?clientId=. The returned value is
// advisory; creating with it can still conflict.
func (h *ProjectHandler) NextID(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryUUID(r, "clientId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if clientID == nil {
		writeError(w, http.StatusBadRequest, "clientId is required")
		return
	}

	next, err := h.svc.NextDisplayID(r.Context(), *clientID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nextIDResponse{Suffix: next.Suffix, DisplayID: next.DisplayID})
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID.String(),
		ClientID:      p.ClientID.String(),
		DisplayID:     p.DisplayID,
		Name:          p.Name,
		Description:   p.Description,
		Status:        p.Status.String(),
		ProjectDate:   p.ProjectDate,
		Location:      p.Location,
		Tag:           p.Tag,
		ClientName:    p.ClientName,
		DocumentCount: p.DocumentCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
