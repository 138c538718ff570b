// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]   (default: up)
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

	"github.com/heartmarshall/seo-review-backend/internal/app"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/migrations"
)

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	provider, db, err := migrations.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, r := range results {
			logger.Info("applied", slog.String("migration", r.Source.Path), slog.Duration("duration", r.Duration))
		}
		logger.Info("migrate up completed", slog.Int("applied", len(results)))

	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("rolled back", slog.String("migration", result.Source.Path))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Error("migrate status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}

	default:
		logger.Error("unknown command", slog.String("command", command))
		os.Exit(1)
	}
}
