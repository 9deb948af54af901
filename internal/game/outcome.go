// Package game runs the world simulation: turns, monster AI, battles and pickups.
package game

// Outcome is the result of advancing a world by one turn.
type Outcome int

const (
	// Continuing means the session is still in progress.
	Continuing Outcome = iota
	// ReturnedHome means the player asked to leave the world.
	ReturnedHome
	// PlayerDefeated means the player lost a battle.
	PlayerDefeated
	// ObjectiveComplete means the world was cleared or a warp item was collected.
	ObjectiveComplete
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case ReturnedHome:
		return "returned_home"
	case PlayerDefeated:
		return "player_defeated"
	case ObjectiveComplete:
		return "objective_complete"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for every outcome that ends the session.
func (o Outcome) IsTerminal() bool {
	return o != Continuing
}

// TurnResult is everything a driver needs after one turn.
type TurnResult struct {
	Outcome Outcome
	// Frame is the rendered grid. Only set while the session is Continuing.
	Frame Frame
	// Messages narrates battles and pickups in the order they happened.
	Messages []string
}

func (r *TurnResult) say(msg string) {
	r.Messages = append(r.Messages, msg)
}
