// Command migrate applies the SQL files under migrations/ through the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log)
	defer func() { _ = logger.Close() }()

	if err := apply(cfg, *dryRun); err != nil {
		slog.Error("migration failed", "error", err.Error())
		_ = logger.Close()
		os.Exit(1)
	}
}

func apply(cfg config.Config, dryRun bool) error {
	client, err := atlasexec.NewClient(cfg.Migrate.WorkDir, cfg.Migrate.AtlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.Dir,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("migration applied", "version", f.Version, "dry_run", dryRun)
	}
	slog.Info("schema up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}
