// Package world provides the terrain grid that actors move across.
package world

const (
	// GlyphDefault is the glyph of an untouched cell.
	GlyphDefault rune = '.'
	// GlyphWall is a non-traversable wall.
	GlyphWall rune = '#'
	// GlyphWater is non-traversable water.
	GlyphWater rune = '~'
)

// Terrain is a single grid cell.
type Terrain struct {
	Glyph       rune
	Traversable bool
}

// DefaultTerrain returns an open floor cell.
func DefaultTerrain() Terrain {
	return Terrain{Glyph: GlyphDefault, Traversable: true}
}

// NewTerrain returns a cell whose traversability follows the glyph policy.
func NewTerrain(glyph rune) Terrain {
	return Terrain{Glyph: glyph, Traversable: IsTraversableGlyph(glyph)}
}

// IsTraversableGlyph returns false for walls and water, true for anything else.
func IsTraversableGlyph(glyph rune) bool {
	switch glyph {
	case GlyphWall, GlyphWater:
		return false
	default:
		return true
	}
}

// Rune returns the cell's display character.
func (t Terrain) Rune() rune {
	return t.Glyph
}
