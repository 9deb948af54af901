package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/world"
)

// World is one simulation session: a grid, the player, monsters and items.
// The player is borrowed from the caller and keeps its level, bonus and
// health after the world is discarded.
type World struct {
	id       uuid.UUID
	grid     *world.Grid
	player   *entity.Unit
	monsters []*entity.Unit
	items    []*entity.Item

	// Pending removals, only populated while a turn is being resolved.
	defeated  mapset.Set[*entity.Unit]
	collected mapset.Set[*entity.Item]

	turns   int
	outcome Outcome
	log     *logrus.Entry
}

// NewWorld creates an empty world of the given size around the player.
func NewWorld(player *entity.Unit, height, width int) *World {
	id := uuid.New()
	return &World{
		id:        id,
		grid:      world.NewGrid(height, width),
		player:    player,
		monsters:  make([]*entity.Unit, 0),
		items:     make([]*entity.Item, 0),
		defeated:  mapset.New[*entity.Unit](),
		collected: mapset.New[*entity.Item](),
		outcome:   Continuing,
		log: logger.Component("world").WithFields(logrus.Fields{
			"session": id.String(),
			"player":  player.Name,
		}),
	}
}

// NewDefault builds the default world: both units are restored to full
// health and placed at the layout's start positions.
func NewDefault(player, monster *entity.Unit, layout gamedata.WorldDef) *World {
	player.ToFullHealth()
	monster.ToFullHealth()
	player.SetPosition(layout.Player.X, layout.Player.Y)
	monster.SetPosition(layout.Monster.X, layout.Monster.Y)

	w := NewWorld(player, layout.Height, layout.Width)
	w.AddMonster(monster)
	return w
}

// AddMonster appends an existing monster.
func (w *World) AddMonster(m *entity.Unit) {
	w.monsters = append(w.monsters, m)
}

// SpawnMonster creates a monster at the given position and adds it.
func (w *World) SpawnMonster(x, y int, name string, maxHealth, attack int) (*entity.Unit, error) {
	m, err := entity.NewMonster(name, maxHealth, attack)
	if err != nil {
		return nil, err
	}
	m.SetPosition(x, y)
	w.AddMonster(m)
	return m, nil
}

// AddItem creates an item at the given position and adds it.
func (w *World) AddItem(x, y int, glyph rune) *entity.Item {
	item := entity.NewItem(x, y, glyph)
	w.items = append(w.items, item)
	return item
}

// SetTerrain overrides the terrain at row y, column x.
func (w *World) SetTerrain(y, x int, glyph rune) {
	w.grid.SetTerrain(y, x, glyph)
}

// ID returns the session identifier.
func (w *World) ID() uuid.UUID { return w.id }

// Grid returns the terrain grid.
func (w *World) Grid() *world.Grid { return w.grid }

// Player returns the borrowed player.
func (w *World) Player() *entity.Unit { return w.player }

// Monsters returns the live monsters in insertion order.
func (w *World) Monsters() []*entity.Unit {
	out := make([]*entity.Unit, len(w.monsters))
	copy(out, w.monsters)
	return out
}

// Items returns the remaining items in insertion order.
func (w *World) Items() []*entity.Item {
	out := make([]*entity.Item, len(w.items))
	copy(out, w.items)
	return out
}

// Turns returns how many turns have been advanced.
func (w *World) Turns() int { return w.turns }

// Outcome returns the current session state.
func (w *World) Outcome() Outcome { return w.outcome }

// IsCleared returns true when no monsters and no items remain.
func (w *World) IsCleared() bool {
	return len(w.monsters) == 0 && len(w.items) == 0
}

// removeDefeated drops monsters queued during the battle phase.
func (w *World) removeDefeated() {
	if w.defeated.Size() == 0 {
		return
	}
	alive := make([]*entity.Unit, 0, len(w.monsters))
	for _, m := range w.monsters {
		if !w.defeated.Has(m) {
			alive = append(alive, m)
		}
	}
	w.monsters = alive
	w.defeated = mapset.New[*entity.Unit]()
}

// removeCollected drops items queued during the pickup phase.
func (w *World) removeCollected() {
	if w.collected.Size() == 0 {
		return
	}
	remaining := make([]*entity.Item, 0, len(w.items))
	for _, i := range w.items {
		if !w.collected.Has(i) {
			remaining = append(remaining, i)
		}
	}
	w.items = remaining
	w.collected = mapset.New[*entity.Item]()
}
