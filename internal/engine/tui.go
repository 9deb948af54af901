package engine

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/ui"
)

// ScreenFunc opens an initialized screen.
type ScreenFunc func() (*ui.Screen, error)

// TUI plays worlds full screen with tcell.
// Arrow keys and w/a/s/d move, space waits a turn, h or q goes home.
// The terminal only leaves line mode while a world is being played, so
// the console menu keeps working between worlds.
type TUI struct {
	open    ScreenFunc
	palette *gamedata.Palette
}

// NewTUI creates a driver that opens a screen with open for every world.
func NewTUI(open ScreenFunc, palette *gamedata.Palette) *TUI {
	return &TUI{open: open, palette: palette}
}

// Play runs the input loop for one world. After a terminal outcome the
// final narration stays up until the next key press. Log output is
// discarded while the screen is open.
func (t *TUI) Play(ctx context.Context, w *game.World) (game.Outcome, error) {
	screen, err := t.open()
	if err != nil {
		return game.Continuing, fmt.Errorf("opening screen: %w", err)
	}
	defer screen.Close()

	restore := logger.Silence()
	defer restore()

	renderer := ui.NewRenderer(screen, t.palette)
	var messages []string

	for {
		renderer.Render(w, w.Player().HealthString(), messages)

		cmd, ok := nextCommand(screen)
		if !ok {
			continue
		}

		result := w.Advance(ctx, cmd)
		messages = result.Messages

		if result.Outcome.IsTerminal() {
			renderer.Render(w, result.Outcome.String(), append(messages, "(press any key)"))
			waitKey(screen)
			return result.Outcome, nil
		}
	}
}

// nextCommand blocks for one event. ok is false for events that do not
// advance the world, such as resizes and unmapped keys.
func nextCommand(screen *ui.Screen) (game.Command, bool) {
	switch ev := screen.PollEvent().(type) {
	case *tcell.EventKey:
		return KeyCommand(ev)
	case *tcell.EventResize:
		screen.Sync()
	case nil:
		// Screen finalized.
		return game.Home, true
	}
	return game.Noop, false
}

func waitKey(screen *ui.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

// KeyCommand maps a key press to a command.
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Home, true
	case tcell.KeyUp:
		return game.North, true
	case tcell.KeyDown:
		return game.South, true
	case tcell.KeyLeft:
		return game.West, true
	case tcell.KeyRight:
		return game.East, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q', 'h', 'H':
			return game.Home, true
		case ' ', '.':
			return game.Noop, true
		default:
			cmd := ParseMove(string(ev.Rune()))
			return cmd, cmd != game.Noop
		}
	}
	return game.Noop, false
}
