package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mozuk/mozuk-backend/internal/config"
	"github.com/mozuk/mozuk-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth     *AuthHandler
	Client   *ClientHandler
	Project  *ProjectHandler
	Document *DocumentHandler
	Ledger   *LedgerHandler
	Health   *HealthHandler
}

// TokenValidator resolves bearer tokens for the auth middleware.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// NewRouter assembles the HTTP routing table with the middleware stack.
// Health endpoints skip auth; login is rate-limited harder than the rest.
func NewRouter(
	h Handlers,
	validator TokenValidator,
	rateLimiter *middleware.RateLimiter,
	corsCfg config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health (no auth).
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health/live", h.Health.Live)

	// Auth.
	loginLimit := rateLimiter.Limit(10)
	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	authed := middleware.Chain(middleware.RequireAuth())
	protected := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	mux.Handle("GET /api/auth/me", protected(h.Auth.Me))

	// Clients.
	mux.Handle("GET /api/clients", protected(h.Client.List))
	mux.Handle("POST /api/clients", protected(h.Client.Create))
	mux.Handle("GET /api/clients/{id}", protected(h.Client.Get))
	mux.Handle("PUT /api/clients/{id}", protected(h.Client.Update))
	mux.Handle("DELETE /api/clients/{id}", protected(h.Client.Delete))

	// Projects. The literal next-id segment takes precedence over {id}.
	mux.Handle("GET /api/projects", protected(h.Project.List))
	mux.Handle("POST /api/projects", protected(h.Project.Create))
	mux.Handle("GET /api/projects/next-id", protected(h.Project.NextID))
	mux.Handle("GET /api/projects/{id}", protected(h.Project.Get))
	mux.Handle("PUT /api/projects/{id}", protected(h.Project.Update))
	mux.Handle("DELETE /api/projects/{id}", protected(h.Project.Delete))

	// Documents.
	mux.Handle("GET /api/documents", protected(h.Document.List))
	mux.Handle("POST /api/documents", protected(h.Document.Create))
	mux.Handle("GET /api/documents/next-id", protected(h.Document.NextID))
	mux.Handle("GET /api/documents/{id}", protected(h.Document.Get))
	mux.Handle("PUT /api/documents/{id}", protected(h.Document.Update))
	mux.Handle("DELETE /api/documents/{id}", protected(h.Document.Delete))
	mux.Handle("POST /api/documents/{id}/file", protected(h.Document.UploadFile))
	mux.Handle("GET /api/documents/{id}/file", protected(h.Document.DownloadFile))

	// Ledger + dashboard.
	mux.Handle("GET /api/ledger", protected(h.Ledger.Ledger))
	mux.Handle("GET /api/dashboard", protected(h.Ledger.Dashboard))

	stack := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
		rateLimiter.Limit(300),
		middleware.Auth(validator),
	)

	return stack(mux)
}
