package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/ui"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		ch     rune
		want   game.Command
		wantOK bool
	}{
		{"up", tcell.KeyUp, 0, game.North, true},
		{"down", tcell.KeyDown, 0, game.South, true},
		{"left", tcell.KeyLeft, 0, game.West, true},
		{"right", tcell.KeyRight, 0, game.East, true},
		{"w", tcell.KeyRune, 'w', game.North, true},
		{"a", tcell.KeyRune, 'a', game.West, true},
		{"s", tcell.KeyRune, 's', game.South, true},
		{"d", tcell.KeyRune, 'd', game.East, true},
		{"space", tcell.KeyRune, ' ', game.Noop, true},
		{"dot", tcell.KeyRune, '.', game.Noop, true},
		{"q", tcell.KeyRune, 'q', game.Home, true},
		{"h", tcell.KeyRune, 'h', game.Home, true},
		{"escape", tcell.KeyEscape, 0, game.Home, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.Home, true},
		{"unmapped rune", tcell.KeyRune, 'x', game.Noop, false},
		{"unmapped key", tcell.KeyF1, 0, game.Noop, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCommand(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("KeyCommand() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// keptScreen records what was on screen when it was finalized.
type keptScreen struct {
	tcell.SimulationScreen
	finalized bool
	final     []string
}

func (s *keptScreen) Fini() {
	s.final = screenRows(s.SimulationScreen)
	s.finalized = true
	s.SimulationScreen.Fini()
}

func screenRows(sim tcell.SimulationScreen) []string {
	cells, width, height := sim.GetContents()
	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if r := cells[y*width+x].Runes; len(r) > 0 {
				b.WriteRune(r[0])
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return rows
}

type keyPress struct {
	key tcell.Key
	ch  rune
}

// scriptedScreens returns a ScreenFunc whose screens come preloaded with
// keys, and the screens it opened.
func scriptedScreens(t *testing.T, keys ...keyPress) (ScreenFunc, *[]*keptScreen) {
	t.Helper()
	var opened []*keptScreen
	open := func() (*ui.Screen, error) {
		kept := &keptScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
		screen, err := ui.Wrap(kept)
		if err != nil {
			return nil, err
		}
		kept.SetSize(40, 12)
		for _, k := range keys {
			kept.InjectKey(k.key, k.ch, tcell.ModNone)
		}
		opened = append(opened, kept)
		return screen, nil
	}
	return open, &opened
}

func newTUIWorld(t *testing.T) (*game.World, *entity.Unit) {
	t.Helper()
	p, err := entity.NewPlayer("Ann", 1)
	require.NoError(t, err)
	p.SetPosition(0, 0)

	w := game.NewWorld(p, 1, 4)
	w.AddItem(2, 0, '@')
	w.AddItem(3, 0, '$')
	return w, p
}

func TestTUIPlayWarp(t *testing.T) {
	palette, err := gamedata.LoadPalette()
	require.NoError(t, err)

	// An unmapped key first: it must not cost a turn.
	open, opened := scriptedScreens(t,
		keyPress{tcell.KeyRune, 'x'},
		keyPress{tcell.KeyRight, 0},
		keyPress{tcell.KeyRune, 'd'},
		keyPress{tcell.KeyEnter, 0},
	)
	w, p := newTUIWorld(t)

	outcome, err := NewTUI(open, palette).Play(context.Background(), w)
	require.NoError(t, err)

	assert.Equal(t, game.ObjectiveComplete, outcome)
	assert.Equal(t, 2, w.Turns())
	assert.Equal(t, 2, p.Level)

	require.Len(t, *opened, 1)
	screen := (*opened)[0]
	assert.True(t, screen.finalized, "screen is released when the world ends")
	assert.Equal(t, "objective_complete", screen.final[2])
	assert.Equal(t, "World complete! (You leveled up!)", screen.final[4])
	assert.Equal(t, "(press any key)", screen.final[5])
}

func TestTUIPlayHome(t *testing.T) {
	palette, err := gamedata.LoadPalette()
	require.NoError(t, err)

	open, opened := scriptedScreens(t,
		keyPress{tcell.KeyRune, ' '},
		keyPress{tcell.KeyEscape, 0},
		keyPress{tcell.KeyRune, 'z'},
	)
	w, p := newTUIWorld(t)

	tui := NewTUI(open, palette)
	outcome, err := tui.Play(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, game.ReturnedHome, outcome)
	assert.Equal(t, entity.Position{X: 0, Y: 0}, p.Position)
	assert.Contains(t, (*opened)[0].final, "Returning home...")

	// Each world gets its own screen.
	w2, _ := newTUIWorld(t)
	_, err = tui.Play(context.Background(), w2)
	require.NoError(t, err)
	assert.Len(t, *opened, 2)
}

func TestConsoleWithTUIDriver(t *testing.T) {
	palette, err := gamedata.LoadPalette()
	require.NoError(t, err)

	open, opened := scriptedScreens(t, keyPress{tcell.KeyRune, 'd'}, keyPress{tcell.KeyEnter, 0})
	var out strings.Builder
	c := NewConsole(strings.NewReader(script("player", "Ann", "", "start warp", "", "exit")), &out, Options{
		Levels:   testFinder(),
		Defaults: gamedata.MustLoadDefaults(),
		Driver:   NewTUI(open, palette),
	})
	require.NoError(t, c.Run(context.Background()))

	require.Len(t, *opened, 1)
	assert.True(t, (*opened)[0].finalized)
	assert.Equal(t, 2, c.Player().Level)
	assert.Contains(t, out.String(), "Thank you for playing Rogue!")
}
