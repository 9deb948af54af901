package game

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/rogue/internal/entity"
)

// collectItems applies every item on the player's cell, in collection order.
// It returns true when a warp item is collected, which ends the pass at once.
// Items without an effect stay where they are.
func (w *World) collectItems(result *TurnResult) bool {
	p := w.player

	for _, item := range w.items {
		if !item.At(p.X, p.Y) {
			continue
		}

		switch item.Effect() {
		case entity.EffectHeal:
			p.ToFullHealth()
			result.say("Healed!")
			w.collected.Put(item)
		case entity.EffectAttackBoost:
			p.IncrementBonus()
			result.say("Attack up!")
			w.collected.Put(item)
		case entity.EffectLevelWarp:
			p.IncrementLevel()
			result.say("World complete! (You leveled up!)")
			w.logPickup(item)
			return true
		default:
			continue
		}
		w.logPickup(item)
	}

	w.removeCollected()
	return false
}

func (w *World) logPickup(item *entity.Item) {
	w.log.WithFields(logrus.Fields{
		"item":   string(item.Glyph),
		"effect": item.Effect().String(),
		"x":      item.X,
		"y":      item.Y,
	}).Debug("item collected")
}
