// Package main is the entry point for Rogue.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rogue/data"
	"github.com/samdwyer/rogue/internal/config"
	"github.com/samdwyer/rogue/internal/engine"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/level"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/storage"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/ui"
)

func main() {
	tui := flag.Bool("tui", false, "play worlds full screen")
	levelDir := flag.String("levels", "", "directory searched for <name>.dat before the built-in levels")
	name := flag.String("name", "", "create a player with this name on start")
	slime := flag.Bool("monster", false, "define the default monster on start")
	flag.Parse()

	// Load .env file for local development
	envErr := godotenv.Load()

	logger.Init(nil)
	log := logger.Component("main")
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if *levelDir != "" {
		cfg.LevelDir = *levelDir
	}

	ctx := context.Background()

	if !cfg.Telemetry {
		telemetry.Disable()
	} else {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("shutting down telemetry")
				}
			}()
		}
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to open save store")
	}
	defer store.Close()

	defaults, err := gamedata.LoadDefaults()
	if err != nil {
		log.WithError(err).Fatal("failed to load defaults")
	}

	opts := engine.Options{
		Levels:   level.NewFinder(levelSources(cfg.LevelDir)...),
		Store:    store,
		Defaults: defaults,
	}

	if *tui {
		palette, err := gamedata.LoadPalette()
		if err != nil {
			log.WithError(err).Fatal("failed to load palette")
		}
		// The screen is opened per world so the menu stays in line mode.
		opts.Driver = engine.NewTUI(ui.NewScreen, palette)
	}

	console := engine.NewConsole(os.Stdin, os.Stdout, opts)
	if *name != "" {
		if err := console.CreatePlayer(*name); err != nil {
			log.WithError(err).Fatal("invalid player name")
		}
	}
	if *slime {
		if err := console.UseDefaultMonster(); err != nil {
			log.WithError(err).Fatal("invalid default monster")
		}
	}

	if err := console.Run(ctx); err != nil {
		log.WithError(err).Fatal("game error")
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.PlayerStore, error) {
	switch cfg.SaveBackend {
	case config.BackendPostgres:
		return storage.NewPostgresStore(ctx, cfg.DatabaseURL, storage.DefaultSlot)
	default:
		return storage.NewFileStore(cfg.SaveFile), nil
	}
}

// levelSources puts the level directory ahead of the built-in levels.
func levelSources(dir string) []fs.FS {
	return []fs.FS{os.DirFS(dir), data.Levels()}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here from the key.
	apiKey := os.Getenv("HONEYCOMB_ROGUE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ROGUE_DATASET")
	if dataset == "" {
		dataset = "rogue"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
