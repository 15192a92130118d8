// Command seeder creates or updates the admin user. The backend is
// single-tenant, so this is the only way accounts come into existence.
//
// Flags:
//
//	--email     admin email (default admin@mozuk.net)
//	--name      admin display name (default Admin)
//	--password  admin password (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	userrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/user"
	"github.com/mozuk/mozuk-backend/internal/app"
	"github.com/mozuk/mozuk-backend/internal/config"
	"github.com/mozuk/mozuk-backend/internal/domain"
)

func main() {
	emailFlag := flag.String("email", "admin@mozuk.net", "admin email")
	nameFlag := flag.String("name", "Admin", "admin display name")
	passwordFlag := flag.String("password", "", "admin password (required)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	password := *passwordFlag
	if password == "" {
		logger.Error("--password is required")
		os.Exit(1)
	}
	if len(password) < 8 {
		logger.Error("password must be at least 8 characters")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.PasswordHashCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)

	u, err := users.Upsert(ctx, &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(*emailFlag)),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(*nameFlag),
	})
	if err != nil {
		logger.Error("upsert admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin user ready",
		slog.String("id", u.ID.String()),
		slog.String("email", u.Email),
	)
}
