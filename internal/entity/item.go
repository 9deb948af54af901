package entity

// Effect is what collecting an item does to the player.
type Effect int

const (
	// EffectNone marks scenery-like items that are never collected.
	EffectNone Effect = iota
	// EffectHeal restores the player to full health.
	EffectHeal
	// EffectAttackBoost adds one to the player's temporary attack bonus.
	EffectAttackBoost
	// EffectLevelWarp levels the player up and completes the world.
	EffectLevelWarp
)

// Item glyphs with an effect.
const (
	GlyphHeal        rune = '+'
	GlyphAttackBoost rune = '^'
	GlyphLevelWarp   rune = '@'
)

// String returns a human-readable effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectHeal:
		return "heal"
	case EffectAttackBoost:
		return "attack_boost"
	case EffectLevelWarp:
		return "level_warp"
	default:
		return "unknown"
	}
}

// EffectOf returns the effect associated with an item glyph.
func EffectOf(glyph rune) Effect {
	switch glyph {
	case GlyphHeal:
		return EffectHeal
	case GlyphAttackBoost:
		return EffectAttackBoost
	case GlyphLevelWarp:
		return EffectLevelWarp
	default:
		return EffectNone
	}
}

// Item is a pickup lying on the grid.
type Item struct {
	Position
	Glyph rune
}

// NewItem creates an item at the given position.
func NewItem(x, y int, glyph rune) *Item {
	return &Item{
		Position: Position{X: x, Y: y},
		Glyph:    glyph,
	}
}

// Effect returns the effect derived from the item's glyph.
func (i *Item) Effect() Effect {
	return EffectOf(i.Glyph)
}
