package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
)

func TestBlockedMovesLeavePositionUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Command
		startX int
		startY int
	}{
		{"off west edge", West, 0, 1},
		{"off north edge", North, 2, 0},
		{"off east edge", East, 2, 2},
		{"off south edge", South, 1, 2},
		{"into wall", East, 0, 0},
		{"into water", South, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer(t, 1, tt.startX, tt.startY)
			w := buildWorld(t, p,
				".#.",
				"..~",
				"...",
			)
			// Keep the world from clearing: the item is never collected.
			w.AddItem(1, 1, inert)
			if tt.startX == 1 && tt.startY == 1 {
				t.Fatal("test layout puts the player on the item")
			}

			result := advance(w, tt.cmd)

			assert.Equal(t, Continuing, result.Outcome)
			assert.Equal(t, entity.Position{X: tt.startX, Y: tt.startY}, p.Position)
		})
	}
}

func TestOpenMovesApply(t *testing.T) {
	p := newPlayer(t, 1, 1, 1)
	w := buildWorld(t, p, "...", "...", "...")
	w.AddItem(0, 0, inert)

	for _, step := range []struct {
		cmd  Command
		x, y int
	}{
		{North, 1, 0},
		{East, 2, 0},
		{South, 2, 1},
		{West, 1, 1},
		{Noop, 1, 1},
		{ParseCommand("jump"), 1, 1},
	} {
		result := advance(w, step.cmd)
		require.Equal(t, Continuing, result.Outcome)
		assert.Equal(t, entity.Position{X: step.x, Y: step.y}, p.Position, "after %v", step.cmd)
	}
	assert.Equal(t, 6, w.Turns())
}

func TestHomeKeepsMonsterMoves(t *testing.T) {
	p := newPlayer(t, 1, 0, 0)
	w := buildWorld(t, p, "....", "....")
	m := spawn(t, w, 2, 0, "rat", 5, 1)

	result := advance(w, Home)

	assert.Equal(t, ReturnedHome, result.Outcome)
	assert.Equal(t, []string{"Returning home..."}, result.Messages)
	assert.Nil(t, result.Frame)
	assert.Equal(t, entity.Position{X: 1, Y: 0}, m.Position, "monster step before home is kept")
	assert.Equal(t, entity.Position{X: 0, Y: 0}, p.Position)
	assert.Equal(t, ReturnedHome, w.Outcome())
}

func TestFinishedWorldIgnoresFurtherTurns(t *testing.T) {
	p := newPlayer(t, 1, 0, 0)
	w := buildWorld(t, p, "....")
	m := spawn(t, w, 3, 0, "rat", 5, 1)

	require.Equal(t, ReturnedHome, advance(w, Home).Outcome)
	turns := w.Turns()

	result := advance(w, East)

	assert.Equal(t, ReturnedHome, result.Outcome)
	assert.Empty(t, result.Messages)
	assert.Equal(t, turns, w.Turns())
	assert.Equal(t, entity.Position{X: 0, Y: 0}, p.Position)
	assert.Equal(t, entity.Position{X: 3, Y: 0}, m.Position)
}

func TestEmptyWorldCompletesOnFirstTurn(t *testing.T) {
	p := newPlayer(t, 1, 0, 0)
	w := buildWorld(t, p, "..")

	result := advance(w, Noop)

	assert.Equal(t, ObjectiveComplete, result.Outcome)
	assert.True(t, w.IsCleared())
}

func TestContinuingTurnRendersFrame(t *testing.T) {
	p := newPlayer(t, 1, 0, 0)
	w := buildWorld(t, p, "...", ".#.")
	w.AddItem(2, 1, inert)

	result := advance(w, South)

	require.Equal(t, Continuing, result.Outcome)
	assert.Equal(t, []string{"...", "A#$"}, result.Frame.Rows())
}

func TestNewDefault(t *testing.T) {
	layout := gamedata.WorldDef{
		Height:  4,
		Width:   6,
		Player:  gamedata.PointDef{X: 1, Y: 1},
		Monster: gamedata.PointDef{X: 4, Y: 2},
	}
	p := newPlayer(t, 2, 5, 5)
	p.TakeDamage(10)
	m, err := entity.NewMonster("Slime", 5, 1)
	require.NoError(t, err)
	m.TakeDamage(7)
	m.SetPosition(0, 0)

	w := NewDefault(p, m, layout)

	assert.Equal(t, p.MaxHealth(), p.Health)
	assert.Equal(t, 5, m.Health)
	assert.Equal(t, entity.Position{X: 1, Y: 1}, p.Position)
	assert.Equal(t, entity.Position{X: 4, Y: 2}, m.Position)
	assert.Equal(t, []*entity.Unit{m}, w.Monsters())
	assert.Equal(t, 6, w.Grid().Width)
	assert.Equal(t, 4, w.Grid().Height)
	assert.Same(t, p, w.Player())
	assert.NotEqual(t, NewWorld(p, 1, 1).ID(), w.ID())
}

func TestSpawnMonsterRejectsBadStats(t *testing.T) {
	w := NewWorld(newPlayer(t, 1, 0, 0), 2, 2)

	_, err := w.SpawnMonster(0, 0, "", 5, 1)
	assert.ErrorIs(t, err, entity.ErrEmptyName)

	_, err = w.SpawnMonster(0, 0, "rat", 0, 1)
	assert.ErrorIs(t, err, entity.ErrInvalidStats)

	assert.Empty(t, w.Monsters())
}
