// Package engine drives worlds from the outside: it reads player input,
// feeds commands to a world one turn at a time and shows the results.
package engine

import (
	"context"
	"strings"

	"github.com/samdwyer/rogue/internal/game"
)

// Driver plays one world until it reaches a terminal outcome.
type Driver interface {
	Play(ctx context.Context, w *game.World) (game.Outcome, error)
}

// ParseMove maps a line of input to a command. The w/a/s/d keys are
// accepted alongside the direction words; anything else is a no-op.
func ParseMove(input string) game.Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w":
		return game.North
	case "a":
		return game.West
	case "s":
		return game.South
	case "d":
		return game.East
	default:
		return game.ParseCommand(input)
	}
}
