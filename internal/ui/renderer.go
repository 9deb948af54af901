package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
)

// Renderer draws a world, a status line and narration.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the world's current frame with the status line and messages
// below it.
func (r *Renderer) Render(w *game.World, status string, messages []string) {
	r.screen.Clear()

	frame := w.Render()
	for y, row := range frame {
		for x, ch := range row {
			r.screen.SetContent(x, y, ch, r.styleAt(w, x, y, ch))
		}
	}

	line := len(frame) + 1
	r.RenderMessage(status, line)
	for i, msg := range messages {
		r.RenderMessage(msg, line+2+i)
	}

	r.screen.Show()
}

// styleAt colors a cell by what the frame shows there.
func (r *Renderer) styleAt(w *game.World, x, y int, ch rune) tcell.Style {
	p := w.Player()
	if p.At(x, y) {
		return tcell.StyleDefault.Foreground(r.palette.Player()).Bold(true)
	}
	for _, m := range w.Monsters() {
		if m.At(x, y) {
			return tcell.StyleDefault.Foreground(r.palette.Monster())
		}
	}
	return tcell.StyleDefault.Foreground(r.palette.Glyph(ch))
}

// RenderMessage writes a line of text at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
