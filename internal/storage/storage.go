// Package storage persists the player's progress between sessions.
// A save is just the player's name and level; everything else is
// rebuilt when the player is restored.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/rogue/internal/entity"
)

// ErrNoSave is returned by Load when nothing has been saved yet.
var ErrNoSave = errors.New("no saved player")

// Record is a saved player.
type Record struct {
	Name  string
	Level int
}

// RecordOf captures the persistent part of a player.
func RecordOf(p *entity.Unit) Record {
	return Record{Name: p.Name, Level: p.Level}
}

// Player rebuilds the player at the saved level with no bonus and full
// health.
func (r Record) Player() (*entity.Unit, error) {
	return entity.NewPlayer(r.Name, r.Level)
}

// String formats the record the way FileStore writes it.
func (r Record) String() string {
	return fmt.Sprintf("%s %d", r.Name, r.Level)
}

// ParseRecord reads "name level". The level is the last space-separated
// field so the name may itself contain spaces.
func ParseRecord(s string) (Record, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, ' ')
	if i <= 0 {
		return Record{}, fmt.Errorf("malformed save %q: expected \"name level\"", s)
	}

	level, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Record{}, fmt.Errorf("malformed save level: %w", err)
	}

	rec := Record{Name: strings.TrimSpace(s[:i]), Level: level}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the record would rebuild a valid player.
func (r Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("malformed save: %w", entity.ErrEmptyName)
	}
	if r.Level < 1 {
		return fmt.Errorf("malformed save: level %d: %w", r.Level, entity.ErrInvalidStats)
	}
	return nil
}

// PlayerStore saves and loads the single player record.
type PlayerStore interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (Record, error)
	Close() error
}
