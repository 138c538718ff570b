// Command import loads SEO metadata suggestions from a CSV file into the
// review table. Rows need seven columns: url, original title, suggested title,
// original meta, suggested meta, keywords, explanation. The header row is
// skipped.
//
// Flags:
//
//	--file           CSV to import (overrides IMPORT_FILE)
//	--replace        delete existing records before inserting
//	--dry-run        parse and report without writing to DB
//	--import-config  path to import config YAML (optional; falls back to env)
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

	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres/metadata"
	"github.com/heartmarshall/seo-review-backend/internal/adapter/redis"
	"github.com/heartmarshall/seo-review-backend/internal/app"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/importer"
)

var _ importer.Store = (*metadata.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "CSV file to import")
	replaceFlag := flag.Bool("replace", false, "delete existing records before inserting")
	dryRunFlag := flag.Bool("dry-run", false, "parse without writing to DB")
	importConfigFlag := flag.String("import-config", "", "path to import config YAML")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*importConfigFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		importCfg.File = *fileFlag
	}
	if *replaceFlag {
		importCfg.Replace = true
	}
	if *dryRunFlag {
		importCfg.DryRun = true
	}
	if importCfg.File == "" {
		logger.Error("no input file: pass --file or set IMPORT_FILE")
		os.Exit(1)
	}

	f, err := os.Open(importCfg.File)
	if err != nil {
		logger.Error("open csv", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	var cache importer.StatsInvalidator
	if appCfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, appCfg.Redis)
		if err != nil {
			logger.Warn("stats cache unavailable, cached stats expire on their own", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			cache = redis.NewStatsCache(client, appCfg.Redis.StatsTTL)
		}
	}

	imp := importer.New(logger, metadata.New(pool), postgres.NewTxManager(pool), cache)

	if _, err := imp.Run(ctx, *importCfg, f); err != nil {
		logger.Error("import failed",
			slog.String("file", importCfg.File),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
