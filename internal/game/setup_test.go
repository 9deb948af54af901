package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rogue/internal/entity"
)

// inert is an item glyph with no effect. It keeps a world from being
// cleared so turns stay Continuing.
const inert = '$'

func newPlayer(t *testing.T, level int, x, y int) *entity.Unit {
	t.Helper()
	p, err := entity.NewPlayer("Ann", level)
	require.NoError(t, err)
	p.SetPosition(x, y)
	return p
}

// buildWorld creates a world whose terrain is given row by row.
func buildWorld(t *testing.T, p *entity.Unit, rows ...string) *World {
	t.Helper()
	require.NotEmpty(t, rows)

	w := NewWorld(p, len(rows), len([]rune(rows[0])))
	for y, row := range rows {
		for x, r := range []rune(row) {
			w.SetTerrain(y, x, r)
		}
	}
	return w
}

func spawn(t *testing.T, w *World, x, y int, name string, health, attack int) *entity.Unit {
	t.Helper()
	m, err := w.SpawnMonster(x, y, name, health, attack)
	require.NoError(t, err)
	return m
}

func advance(w *World, cmd Command) TurnResult {
	return w.Advance(context.Background(), cmd)
}
