package level

import (
	"errors"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/game"
)

// Build validates the level and returns a fresh world around the player.
// Nothing is mutated on failure: the player keeps its position and any
// previous world stays as it was. The player's health is left alone; the
// caller restores it when the session starts.
func (l *Level) Build(player *entity.Unit) (*game.World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	start := player.Position
	if l.Player != nil {
		start = *l.Player
	}
	if !l.inBounds(start.X, start.Y) {
		return nil, malformed(l.playerLine, nil, "player position (%d,%d) is outside the %dx%d grid",
			start.X, start.Y, l.Width, l.Height)
	}

	w := game.NewWorld(player, l.Height, l.Width)
	for y, row := range l.Rows {
		x := 0
		for _, r := range row {
			w.SetTerrain(y, x, r)
			x++
		}
	}
	for _, m := range l.Monsters {
		if _, err := w.SpawnMonster(m.X, m.Y, m.Name, m.Health, m.Attack); err != nil {
			// Validate already checked the stats.
			return nil, malformed(m.Line, err, "invalid monster")
		}
	}
	for _, i := range l.Items {
		w.AddItem(i.X, i.Y, i.Glyph)
	}

	player.SetPosition(start.X, start.Y)
	return w, nil
}

// Validate checks sizes, entity bounds and monster stats.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return malformed(0, nil, "grid size %dx%d must be positive", l.Width, l.Height)
	}
	if l.Width > MaxSize || l.Height > MaxSize {
		return malformed(0, nil, "grid size %dx%d exceeds %dx%d", l.Width, l.Height, MaxSize, MaxSize)
	}
	if len(l.Rows) > l.Height {
		return malformed(0, nil, "%d terrain rows for a grid %d high", len(l.Rows), l.Height)
	}
	if l.Player != nil && !l.inBounds(l.Player.X, l.Player.Y) {
		return malformed(l.playerLine, nil, "player position (%d,%d) is outside the %dx%d grid",
			l.Player.X, l.Player.Y, l.Width, l.Height)
	}

	for _, m := range l.Monsters {
		if !l.inBounds(m.X, m.Y) {
			return malformed(m.Line, nil, "monster %s at (%d,%d) is outside the %dx%d grid",
				m.Name, m.X, m.Y, l.Width, l.Height)
		}
		if _, err := entity.NewMonster(m.Name, m.Health, m.Attack); err != nil {
			return malformed(m.Line, err, "invalid monster %s", m.Name)
		}
	}

	for _, i := range l.Items {
		if !l.inBounds(i.X, i.Y) {
			return malformed(i.Line, nil, "item %c at (%d,%d) is outside the %dx%d grid",
				i.Glyph, i.X, i.Y, l.Width, l.Height)
		}
	}

	return nil
}

func (l *Level) inBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Snapshot describes a world's layout as level data: grid size, terrain,
// player, monsters (with their max health) and items.
func Snapshot(w *game.World) *Level {
	grid := w.Grid()
	lvl := &Level{
		Width:  grid.Width,
		Height: grid.Height,
		Rows:   make([]string, grid.Height),
	}

	for y := 0; y < grid.Height; y++ {
		row := make([]rune, grid.Width)
		for x := range row {
			row[x] = grid.GlyphAt(y, x)
		}
		lvl.Rows[y] = string(row)
	}

	pos := w.Player().Position
	lvl.Player = &pos

	for _, m := range w.Monsters() {
		lvl.Monsters = append(lvl.Monsters, MonsterRecord{
			X: m.X, Y: m.Y,
			Name:   m.Name,
			Health: m.MaxHealth(),
			Attack: m.AttackDamage(),
		})
	}
	for _, i := range w.Items() {
		lvl.Items = append(lvl.Items, ItemRecord{X: i.X, Y: i.Y, Glyph: i.Glyph})
	}

	return lvl
}

// IsNotFound reports whether err means the level does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLevelNotFound)
}
