// Package config reads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Save backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

const (
	defaultSaveFile = "player.dat"
	defaultLevelDir = "."
)

// Config holds game configuration options.
type Config struct {
	// LevelDir is searched for "<name>.dat" level files before the embedded levels.
	LevelDir string
	// SaveBackend selects where player records go: "file" or "postgres".
	SaveBackend string
	// SaveFile is the player record path used by the file backend.
	SaveFile string
	// DatabaseURL is the connection string used by the postgres backend.
	DatabaseURL string
	// Telemetry enables the OTLP exporter. Off by default.
	Telemetry bool
}

// Load builds a Config from ROGUE_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		LevelDir:    envOr("ROGUE_LEVEL_DIR", defaultLevelDir),
		SaveBackend: strings.ToLower(envOr("ROGUE_SAVE_BACKEND", BackendFile)),
		SaveFile:    envOr("ROGUE_SAVE_FILE", defaultSaveFile),
		DatabaseURL: os.Getenv("ROGUE_DATABASE_URL"),
		Telemetry:   isOn(os.Getenv("ROGUE_TELEMETRY")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	switch c.SaveBackend {
	case BackendFile:
		if c.SaveFile == "" {
			return fmt.Errorf("config: file backend requires ROGUE_SAVE_FILE")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: postgres backend requires ROGUE_DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown save backend %q", c.SaveBackend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func isOn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "on", "true", "yes":
		return true
	default:
		return false
	}
}
