package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mozuk/mozuk-backend/internal/adapter/filestore"
	"github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	clientrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/client"
	documentrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/document"
	projectrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/project"
	userrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/user"
	"github.com/mozuk/mozuk-backend/internal/auth"
	"github.com/mozuk/mozuk-backend/internal/config"
	authsvc "github.com/mozuk/mozuk-backend/internal/service/auth"
	clientsvc "github.com/mozuk/mozuk-backend/internal/service/client"
	documentsvc "github.com/mozuk/mozuk-backend/internal/service/document"
	ledgersvc "github.com/mozuk/mozuk-backend/internal/service/ledger"
	projectsvc "github.com/mozuk/mozuk-backend/internal/service/project"
	"github.com/mozuk/mozuk-backend/internal/transport/middleware"
	"github.com/mozuk/mozuk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// adapters and services, and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	files, err := filestore.NewLocal(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	users := userrepo.New(pool)
	clients := clientrepo.New(pool)
	projects := projectrepo.New(pool)
	documents := documentrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager)
	clientService := clientsvc.NewService(logger, clients, projects)
	projectService := projectsvc.NewService(logger, projects, clients, txm)
	documentService := documentsvc.NewService(logger, documents, projects, files, txm)
	ledgerService := ledgersvc.NewService(logger, documents, clients, projects)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Client:   rest.NewClientHandler(clientService, logger),
		Project:  rest.NewProjectHandler(projectService, logger),
		Document: rest.NewDocumentHandler(documentService, cfg.Uploads.MaxSizeBytes, logger),
		Ledger:   rest.NewLedgerHandler(ledgerService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}, authService, rateLimiter, cfg.CORS, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
