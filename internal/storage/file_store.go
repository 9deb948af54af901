package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/telemetry"
)

// FileStore keeps the record as a single "name level" line in a file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the save file location.
func (s *FileStore) Path() string { return s.path }

// Save overwrites the save file.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	_, span := telemetry.Tracer("storage").Start(ctx, "storage.save")
	defer span.End()
	span.SetAttributes(
		attribute.String("storage.backend", "file"),
		attribute.String("player.name", rec.Name),
		attribute.Int("player.level", rec.Level),
	)

	if err := rec.Validate(); err != nil {
		span.RecordError(err)
		return err
	}

	if err := os.WriteFile(s.path, []byte(rec.String()+"\n"), 0o644); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return fmt.Errorf("writing save file: %w", err)
	}

	logger.Component("storage").WithField("path", s.path).Debug("player saved")
	return nil
}

// Load reads the save file. A missing file is ErrNoSave.
func (s *FileStore) Load(ctx context.Context) (Record, error) {
	_, span := telemetry.Tracer("storage").Start(ctx, "storage.load")
	defer span.End()
	span.SetAttributes(attribute.String("storage.backend", "file"))

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNoSave
	}
	if err != nil {
		span.RecordError(err)
		return Record{}, fmt.Errorf("reading save file: %w", err)
	}

	rec, err := ParseRecord(string(raw))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed save")
		return Record{}, err
	}
	span.SetAttributes(attribute.Int("player.level", rec.Level))
	return rec, nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
