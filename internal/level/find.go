package level

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/telemetry"
)

// Extension is appended to level names to get the file name.
const Extension = ".dat"

// Open reads and parses "<name>.dat" from fsys.
func Open(fsys fs.FS, name string) (*Level, error) {
	f, err := fsys.Open(name + Extension)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
		}
		return nil, fmt.Errorf("opening level %s: %w", name, err)
	}
	defer f.Close()

	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

// Finder looks a level up in several filesystems, first match wins.
// Typically the level directory on disk followed by the embedded levels.
type Finder struct {
	Sources []fs.FS
}

// NewFinder creates a finder over the given sources.
func NewFinder(sources ...fs.FS) *Finder {
	return &Finder{Sources: sources}
}

// Find returns the first level called name. A malformed file stops the
// search; it does not fall through to later sources.
func (f *Finder) Find(ctx context.Context, name string) (*Level, error) {
	tracer := telemetry.Tracer("level")
	_, span := tracer.Start(ctx, "level.load")
	defer span.End()
	span.SetAttributes(attribute.String("level.name", name))

	log := logger.Component("level").WithField("level_name", name)

	for i, src := range f.Sources {
		lvl, err := Open(src, name)
		if IsNotFound(err) {
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "malformed level")
			log.WithError(err).Warn("level failed to load")
			return nil, err
		}

		span.SetAttributes(
			attribute.Int("level.source", i),
			attribute.Int("level.width", lvl.Width),
			attribute.Int("level.height", lvl.Height),
			attribute.Int("level.monsters", len(lvl.Monsters)),
			attribute.Int("level.items", len(lvl.Items)),
		)
		log.WithFields(logrus.Fields{
			"source": i,
			"width":  lvl.Width,
			"height": lvl.Height,
		}).Debug("level loaded")
		return lvl, nil
	}

	span.SetAttributes(attribute.Bool("level.not_found", true))
	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}
