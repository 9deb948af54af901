package game

import "strings"

// Command is one player instruction for a turn.
type Command int

const (
	// Noop lets the world advance without moving the player.
	Noop Command = iota
	North
	South
	East
	West
	// Home leaves the world.
	Home
)

// String returns the command token.
func (c Command) String() string {
	switch c {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Home:
		return "home"
	default:
		return "noop"
	}
}

// ParseCommand maps a token to a Command. Unrecognized tokens are Noop.
func ParseCommand(token string) Command {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "north":
		return North
	case "south":
		return South
	case "east":
		return East
	case "west":
		return West
	case "home":
		return Home
	default:
		return Noop
	}
}

// Delta returns the grid step for a direction command, or 0, 0.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
