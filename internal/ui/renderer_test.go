package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(sim)
	require.NoError(t, err)
	t.Cleanup(screen.Close)
	sim.SetSize(40, 20)

	palette, err := gamedata.LoadPalette()
	require.NoError(t, err)
	return NewRenderer(screen, palette), screen
}

func TestRenderDrawsFrameAndMessages(t *testing.T) {
	r, screen := newTestRenderer(t)

	p, err := entity.NewPlayer("Ann", 1)
	require.NoError(t, err)
	p.SetPosition(0, 0)
	w := game.NewWorld(p, 2, 3)
	w.SetTerrain(1, 2, '#')
	_, err = w.SpawnMonster(1, 0, "rat", 5, 1)
	require.NoError(t, err)

	r.Render(w, "Ann 20/20", []string{"hello"})

	want := []string{"Ar.", "..#"}
	for y, row := range want {
		for x, ch := range row {
			got, _ := screen.Content(x, y)
			assert.Equal(t, ch, got, "cell (%d,%d)", x, y)
		}
	}

	got, _ := screen.Content(0, 3)
	assert.Equal(t, 'A', got, "status line")
	got, _ = screen.Content(0, 5)
	assert.Equal(t, 'h', got, "first message")

	_, style := screen.Content(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, r.palette.Player(), fg)

	_, style = screen.Content(1, 0)
	fg, _, _ = style.Decompose()
	assert.Equal(t, r.palette.Monster(), fg)

	_, style = screen.Content(2, 1)
	fg, _, _ = style.Decompose()
	assert.Equal(t, r.palette.Glyph('#'), fg)
}
