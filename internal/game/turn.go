package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rogue/internal/telemetry"
)

// Render composites the whole grid into a frame.
// The driver calls it once before the first turn; Advance renders after
// every turn that leaves the session Continuing.
func (w *World) Render() Frame {
	return w.render()
}

// Advance runs one full turn for the given command.
// The order is fixed: monster AI, home check, player move, battles,
// pickups, clear check, render. Once a terminal outcome has been returned
// further calls change nothing and return that outcome again.
func (w *World) Advance(ctx context.Context, cmd Command) TurnResult {
	if w.outcome.IsTerminal() {
		return TurnResult{Outcome: w.outcome}
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.turn")
	defer span.End()

	w.turns++
	result := TurnResult{Outcome: Continuing}

	// Monsters react to where the player stands before this command.
	w.moveMonsters()

	if cmd == Home {
		result.say("Returning home...")
		return w.finish(span, cmd, result, ReturnedHome)
	}

	w.movePlayer(cmd)

	if w.resolveBattles(ctx, &result) {
		return w.finish(span, cmd, result, PlayerDefeated)
	}

	if w.collectItems(&result) {
		return w.finish(span, cmd, result, ObjectiveComplete)
	}

	if w.IsCleared() {
		return w.finish(span, cmd, result, ObjectiveComplete)
	}

	result.Frame = w.render()
	w.record(span, cmd, Continuing)
	return result
}

// movePlayer applies a direction command if the destination can be entered.
// Blocked and off-grid moves are silently ignored.
func (w *World) movePlayer(cmd Command) {
	dx, dy := cmd.Delta()
	if dx == 0 && dy == 0 {
		return
	}

	dest := w.player.Shift(dx, dy)
	if w.grid.CanEnter(dest.X, dest.Y) {
		w.player.Move(dx, dy)
	}
}

// finish stores a terminal outcome and records it.
func (w *World) finish(span trace.Span, cmd Command, result TurnResult, outcome Outcome) TurnResult {
	w.outcome = outcome
	result.Outcome = outcome
	w.record(span, cmd, outcome)

	w.log.WithFields(logrus.Fields{
		"outcome":      outcome.String(),
		"turns":        w.turns,
		"player_level": w.player.Level,
	}).Debug("session ended")
	return result
}

func (w *World) record(span trace.Span, cmd Command, outcome Outcome) {
	span.SetAttributes(
		attribute.String("world.session", w.id.String()),
		attribute.Int("world.turn", w.turns),
		attribute.String("world.command", cmd.String()),
		attribute.String("world.outcome", outcome.String()),
		attribute.Int("world.monsters_remaining", len(w.monsters)),
		attribute.Int("world.items_remaining", len(w.items)),
		attribute.Int("player.health", w.player.Health),
		attribute.Int("player.x", w.player.X),
		attribute.Int("player.y", w.player.Y),
	)

	w.log.WithFields(logrus.Fields{
		"turn":    w.turns,
		"command": cmd.String(),
		"x":       w.player.X,
		"y":       w.player.Y,
		"health":  w.player.Health,
	}).Debug("turn advanced")
}
