package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/telemetry"
)

// BattleReport summarizes one battle between the player and a monster.
type BattleReport struct {
	Monster     *entity.Unit
	PlayerHits  int // Strikes dealt by the player
	MonsterHits int // Retaliations dealt by the monster
	PlayerWon   bool
}

// resolveBattles fights every monster sharing the player's cell, in
// collection order. It returns true as soon as the player is defeated.
// Defeated monsters are removed only after all battles are done.
func (w *World) resolveBattles(ctx context.Context, result *TurnResult) bool {
	for _, m := range w.monsters {
		if !m.At(w.player.X, w.player.Y) {
			continue
		}

		report := w.fight(ctx, m, result)
		if !report.PlayerWon {
			return true
		}
		w.defeated.Put(m)
	}

	w.removeDefeated()
	return false
}

// fight runs one battle to conclusion. The player strikes first and the
// monster retaliates each round it survives.
func (w *World) fight(ctx context.Context, m *entity.Unit, result *TurnResult) BattleReport {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.battle")
	defer span.End()

	p := w.player
	report := BattleReport{Monster: m}

	result.say(fmt.Sprintf("%s encountered a %s!", p.Name, m.Name))

	for {
		result.say(p.HealthString() + " | " + m.HealthString())

		m.TakeDamage(p.AttackDamage())
		report.PlayerHits++
		result.say(fmt.Sprintf("%s attacks %s for %d damage.", p.Name, m.Name, p.AttackDamage()))

		if m.IsDefeated() {
			report.PlayerWon = true
			result.say(p.Name + " wins!")
			break
		}

		p.TakeDamage(m.AttackDamage())
		report.MonsterHits++
		result.say(fmt.Sprintf("%s attacks %s for %d damage.", m.Name, p.Name, m.AttackDamage()))

		if p.IsDefeated() {
			result.say(m.Name + " wins!")
			break
		}
	}

	span.SetAttributes(
		attribute.String("monster", m.Name),
		attribute.Int("player_hits", report.PlayerHits),
		attribute.Int("monster_hits", report.MonsterHits),
		attribute.Bool("player_won", report.PlayerWon),
		attribute.Int("player_health_remaining", p.Health),
	)

	w.log.WithFields(logrus.Fields{
		"monster":      m.Name,
		"player_hits":  report.PlayerHits,
		"monster_hits": report.MonsterHits,
		"player_won":   report.PlayerWon,
	}).Debug("battle resolved")

	return report
}
