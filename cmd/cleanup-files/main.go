// Command cleanup-files removes uploaded files that no document references
// anymore. Document deletion removes files best-effort; this sweep catches
// what it missed. Intended to be invoked by an external cron job.
//
// Flags:
//
//	--dry-run  report orphans without deleting them
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mozuk/mozuk-backend/internal/adapter/filestore"
	"github.com/mozuk/mozuk-backend/internal/adapter/postgres"
	documentrepo "github.com/mozuk/mozuk-backend/internal/adapter/postgres/document"
	"github.com/mozuk/mozuk-backend/internal/app"
	"github.com/mozuk/mozuk-backend/internal/config"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "report orphans without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := filestore.NewLocal(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes)
	if err != nil {
		logger.Error("open file store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	documents := documentrepo.New(pool)

	referenced, err := documents.ListFilePaths(ctx)
	if err != nil {
		logger.Error("list referenced files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	onDisk, err := store.List()
	if err != nil {
		logger.Error("list stored files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	refSet := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		refSet[p] = struct{}{}
	}

	var removed, failed int
	for _, name := range onDisk {
		if _, ok := refSet[name]; ok {
			continue
		}
		if *dryRunFlag {
			logger.Info("orphaned file", slog.String("file", name))
			removed++
			continue
		}
		if err := store.Remove(name); err != nil {
			logger.Warn("remove orphaned file",
				slog.String("file", name),
				slog.String("error", err.Error()),
			)
			failed++
			continue
		}
		logger.Info("removed orphaned file", slog.String("file", name))
		removed++
	}

	logger.Info("cleanup completed",
		slog.Int("on_disk", len(onDisk)),
		slog.Int("referenced", len(referenced)),
		slog.Int("orphans", removed),
		slog.Int("failed", failed),
		slog.Bool("dry_run", *dryRunFlag),
	)

	if failed > 0 {
		os.Exit(1)
	}
}
