package gamedata

import "fmt"

// PointDef is a grid coordinate loaded from JSON.
type PointDef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WorldDef describes the default world used when no level file is given.
type WorldDef struct {
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Player  PointDef `json:"player"`  // Player start position
	Monster PointDef `json:"monster"` // Default monster start position
}

// MonsterDef describes a monster's stats.
type MonsterDef struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Attack int    `json:"attack"`
}

// DefaultsFile represents the structure of defaults.json.
type DefaultsFile struct {
	World   WorldDef   `json:"world"`
	Monster MonsterDef `json:"monster"`
}

// Validate checks that both start positions lie inside the world.
func (d WorldDef) Validate() error {
	if d.Height <= 0 || d.Width <= 0 {
		return fmt.Errorf("invalid default world size %dx%d", d.Width, d.Height)
	}
	for _, p := range []PointDef{d.Player, d.Monster} {
		if p.X < 0 || p.X >= d.Width || p.Y < 0 || p.Y >= d.Height {
			return fmt.Errorf("default position (%d,%d) outside %dx%d world", p.X, p.Y, d.Width, d.Height)
		}
	}
	return nil
}

// LoadDefaults loads the default world and monster from defaults.json.
func LoadDefaults() (DefaultsFile, error) {
	file, err := Load[DefaultsFile]("defaults.json")
	if err != nil {
		return DefaultsFile{}, err
	}
	if err := file.World.Validate(); err != nil {
		return DefaultsFile{}, fmt.Errorf("defaults.json: %w", err)
	}
	return file, nil
}

// MustLoadDefaults loads defaults, panicking on error.
func MustLoadDefaults() DefaultsFile {
	defaults, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return defaults
}
