package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/telemetry"
)

// DefaultSlot is the row used when no slot is given.
const DefaultSlot = "default"

// PostgresStore keeps the record in the players table, one row per slot.
type PostgresStore struct {
	db   *sql.DB
	slot string
}

// NewPostgresStore connects, checks the connection and creates the schema.
func NewPostgresStore(ctx context.Context, connectionString, slot string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if slot == "" {
		slot = DefaultSlot
	}
	store := &PostgresStore{db: db, slot: slot}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		slot TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		level INTEGER NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save upserts the slot's row.
func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	ctx, span := telemetry.Tracer("storage").Start(ctx, "storage.save")
	defer span.End()
	span.SetAttributes(
		attribute.String("storage.backend", "postgres"),
		attribute.String("player.name", rec.Name),
		attribute.Int("player.level", rec.Level),
	)

	if err := rec.Validate(); err != nil {
		span.RecordError(err)
		return err
	}

	query := `
	INSERT INTO players (slot, name, level)
	VALUES ($1, $2, $3)
	ON CONFLICT (slot)
	DO UPDATE SET name = $2, level = $3, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, s.slot, rec.Name, rec.Level); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save player: %w", err)
	}

	logger.Component("storage").WithField("slot", s.slot).Debug("player saved")
	return nil
}

// Load reads the slot's row. A missing row is ErrNoSave.
func (s *PostgresStore) Load(ctx context.Context) (Record, error) {
	ctx, span := telemetry.Tracer("storage").Start(ctx, "storage.load")
	defer span.End()
	span.SetAttributes(attribute.String("storage.backend", "postgres"))

	var rec Record
	err := s.db.QueryRowContext(ctx,
		`SELECT name, level FROM players WHERE slot = $1`, s.slot,
	).Scan(&rec.Name, &rec.Level)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNoSave
	}
	if err != nil {
		span.RecordError(err)
		return Record{}, fmt.Errorf("failed to load player: %w", err)
	}

	if err := rec.Validate(); err != nil {
		span.RecordError(err)
		return Record{}, err
	}
	return rec, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
