package game

import "strings"

// Frame is a rendered grid, one glyph per cell, indexed [y][x].
type Frame [][]rune

// Rows returns each row as a string.
func (f Frame) Rows() []string {
	rows := make([]string, len(f))
	for y, row := range f {
		rows[y] = string(row)
	}
	return rows
}

// String returns the frame as newline-terminated rows.
func (f Frame) String() string {
	var b strings.Builder
	for _, row := range f {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// render builds a frame from the current state.
func (w *World) render() Frame {
	frame := make(Frame, w.grid.Height)
	for y := range frame {
		frame[y] = make([]rune, w.grid.Width)
		for x := range frame[y] {
			frame[y][x] = w.glyphAt(x, y)
		}
	}
	return frame
}

// glyphAt returns the topmost glyph on a cell.
// Priority: player, then monsters, then items, then terrain. Within a
// collection the earliest inserted entity wins.
func (w *World) glyphAt(x, y int) rune {
	if w.player.At(x, y) {
		return w.player.Glyph
	}
	for _, m := range w.monsters {
		if m.At(x, y) {
			return m.Glyph
		}
	}
	for _, i := range w.items {
		if i.At(x, y) {
			return i.Glyph
		}
	}
	return w.grid.GlyphAt(y, x)
}
