package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/internal/service/ledger"
)

// ledgerService defines the minimal interface needed by LedgerHandler.
type ledgerService interface {
	GetLedger(ctx context.Context, projectID *uuid.UUID) (domain.Ledger, error)
	GetDashboard(ctx context.Context) (*ledger.Dashboard, error)
}

// LedgerHandler serves the ledger and dashboard endpoints.
type LedgerHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, log: logger.With("handler", "ledger")}
}

type ledgerResponse struct {
	TotalInvoiced  decimal.Decimal `json:"totalInvoiced"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	InvoiceCount   int             `json:"invoiceCount"`
	PaidCount      int             `json:"paidCount"`
}

type dashboardResponse struct {
	ClientCount   int            `json:"clientCount"`
	ProjectCount  int            `json:"projectCount"`
	DocumentCount int            `json:"documentCount"`
	Ledger        ledgerResponse `json:"ledger"`
}

// Ledger handles GET /api/ledger with an optional projectId scope.
func (h *LedgerHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "projectId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetLedger(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLedgerResponse(l))
}

// Dashboard handles GET /api/dashboard.
func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		ClientCount:   dash.ClientCount,
		ProjectCount:  dash.ProjectCount,
		DocumentCount: dash.DocumentCount,
		Ledger:        toLedgerResponse(dash.Ledger),
	})
}

func toLedgerResponse(l domain.Ledger) ledgerResponse {
	return ledgerResponse{
		TotalInvoiced:  l.TotalInvoiced,
		TotalCollected: l.TotalCollected,
		Outstanding:    l.Outstanding,
		InvoiceCount:   l.InvoiceCount,
		PaidCount:      l.PaidCount,
	}
}
