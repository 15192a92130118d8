package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/internal/service/document"
)

// documentService defines the minimal interface needed by DocumentHandler.
type documentService interface {
	ListDocuments(ctx context.Context, projectID *uuid.UUID) ([]domain.Document, error)
	GetDocument(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	CreateDocument(ctx context.Context, input document.CreateDocumentInput) (*domain.Document, error)
	UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID uuid.UUID) error
	NextDisplayID(ctx context.Context, projectID uuid.UUID) (domain.NextID, error)
	UploadFile(ctx context.Context, documentID uuid.UUID, r io.Reader, originalName, mimeType string) (*domain.Document, error)
	DownloadFile(ctx context.Context, documentID uuid.UUID) (io.ReadCloser, *domain.FileInfo, error)
}

// DocumentHandler serves document REST endpoints.
type DocumentHandler struct {
	svc          documentService
	maxSizeBytes int64
	log          *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. maxSizeBytes caps multipart
// uploads before they reach the file store.
func NewDocumentHandler(svc documentService, maxSizeBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxSizeBytes: maxSizeBytes, log: logger.With("handler", "document")}
}

type documentRequest struct {
	ProjectID uuid.UUID        `json:"projectId"`
	DisplayID *string          `json:"displayId"`
	Name      string           `json:"name"`
	DocDate   *time.Time       `json:"docDate"`
	Type      *string          `json:"type"`
	Status    *string          `json:"status"`
	Link      *string          `json:"link"`
	Amount    *decimal.Decimal `json:"amount"`
	Paid      *bool            `json:"paid"`
}

type documentResponse struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"projectId"`
	DisplayID   *string          `json:"displayId"`
	Name        string           `json:"name"`
	DocDate     *time.Time       `json:"docDate"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	Link        *string          `json:"link"`
	FileName    *string          `json:"fileName"`
	MimeType    *string          `json:"mimeType"`
	SizeBytes   *int64           `json:"sizeBytes"`
	Amount      *decimal.Decimal `json:"amount"`
	Paid        *bool            `json:"paid"`
	ProjectName string           `json:"projectName,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// List handles GET /api/documents with an optional projectId filter.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	docs, err := h.svc.ListDocuments(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]documentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, toDocumentResponse(&docs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(d))
}

// Create handles POST /api/documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := document.CreateDocumentInput{
		ProjectID: req.ProjectID,
		DisplayID: req.DisplayID,
		Name:      req.Name,
		DocDate:   req.DocDate,
		Link:      req.Link,
		Amount:    req.Amount,
		Paid:      req.Paid,
	}
	if req.Type != nil {
		docType := domain.DocumentType(*req.Type)
		input.Type = &docType
	}
	if req.Status != nil {
		status := domain.DocumentStatus(*req.Status)
		input.Status = &status
	}

	d, err := h.svc.CreateDocument(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(d))
}

// Update handles PUT /api/documents/{id}.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := document.UpdateDocumentInput{
		DocumentID: id,
		DisplayID:  req.DisplayID,
		Name:       req.Name,
		DocDate:    req.DocDate,
		Link:       req.Link,
		Amount:     req.Amount,
		Paid:       req.Paid,
	}
	if req.Type != nil {
		input.Type = domain.DocumentType(*req.Type)
	}
	if req.Status != nil {
		input.Status = domain.DocumentStatus(*req.Status)
	}

	d, err := h.svc.UpdateDocument(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(d))
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NextID handles GET /api/documents/next-id?projectId=.
func (h *DocumentHandler) NextID(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if projectID == nil {
		writeError(w, http.StatusBadRequest, "projectId is required")
		return
	}

	next, err := h.svc.NextDisplayID(r.Context(), *projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nextIDResponse{Suffix: next.Suffix, DisplayID: next.DisplayID})
}

// UploadFile handles POST /api/documents/{id}/file (multipart, field "file").
func (h *DocumentHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeBytes+1024) // multipart overhead
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	d, err := h.svc.UploadFile(r.Context(), id, file, header.Filename, mimeType)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(d))
}

// DownloadFile handles GET /api/documents/{id}/file.
func (h *DocumentHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reader, info, err := h.svc.DownloadFile(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", info.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name))
	if info.SizeBytes > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", info.SizeBytes))
	}
	io.Copy(w, reader) //nolint:errcheck
}

func toDocumentResponse(d *domain.Document) documentResponse {
	resp := documentResponse{
		ID:          d.ID.String(),
		ProjectID:   d.ProjectID.String(),
		DisplayID:   d.DisplayID,
		Name:        d.Name,
		DocDate:     d.DocDate,
		Type:        d.Type.String(),
		Status:      d.Status.String(),
		Link:        d.Link,
		Amount:      d.Amount,
		Paid:        d.Paid,
		ProjectName: d.ProjectName,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.File != nil {
		resp.FileName = &d.File.Name
		resp.MimeType = &d.File.MimeType
		resp.SizeBytes = &d.File.SizeBytes
	}
	return resp
}
