package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Default string            `json:"default"`
	Player  string            `json:"player"`
	Monster string            `json:"monster"`
	Glyphs  map[string]string `json:"glyphs"` // Terrain and item glyph colors
}

// Palette maps glyphs to terminal colors.
type Palette struct {
	fallback tcell.Color
	player   tcell.Color
	monster  tcell.Color
	glyphs   map[rune]tcell.Color
}

// NewPalette converts a loaded palette file. Unparseable colors fall back
// to the default color.
func NewPalette(file PaletteFile) *Palette {
	fallback, err := ParseHexColor(file.Default)
	if err != nil {
		fallback = tcell.ColorWhite
	}

	p := &Palette{
		fallback: fallback,
		player:   colorOr(file.Player, fallback),
		monster:  colorOr(file.Monster, fallback),
		glyphs:   make(map[rune]tcell.Color, len(file.Glyphs)),
	}
	for glyph, hex := range file.Glyphs {
		r, _ := utf8.DecodeRuneInString(glyph)
		if r == utf8.RuneError {
			continue
		}
		p.glyphs[r] = colorOr(hex, fallback)
	}
	return p
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file), nil
}

// Player returns the color used for the player glyph.
func (p *Palette) Player() tcell.Color { return p.player }

// Monster returns the color used for monster glyphs.
func (p *Palette) Monster() tcell.Color { return p.monster }

// Glyph returns the color for a terrain or item glyph.
func (p *Palette) Glyph(r rune) tcell.Color {
	if c, ok := p.glyphs[r]; ok {
		return c
	}
	return p.fallback
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
