package entity

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	baseMaxHealth     = 17
	maxHealthPerLevel = 3
	baseAttackDamage  = 1
	startingLevel     = 1
)

const fallbackGlyph rune = '?'

var (
	// ErrEmptyName is returned when a unit is created without a name.
	ErrEmptyName = errors.New("unit must have a non-empty name")
	// ErrInvalidStats is returned when monster stats are out of range.
	ErrInvalidStats = errors.New("invalid unit stats")
)

// Kind tags which variant a Unit is.
type Kind int

const (
	// KindPlayer is the player-controlled unit. Its stats derive from its level.
	KindPlayer Kind = iota
	// KindMonster is a hostile unit with fixed stats.
	KindMonster
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Unit is an actor on the grid: either the player or a monster.
// Fields that only apply to one variant are ignored for the other.
type Unit struct {
	Position
	Kind   Kind
	Name   string
	Glyph  rune
	Health int // Current health, may drop below zero during a battle

	// Player only
	Level int
	Bonus int // Temporary attack bonus, reset by the caller between sessions

	// Monster only
	maxHealth int
	attack    int
}

// NewPlayer creates a player at the given level with full health.
// The glyph is the upper-cased first letter of the name.
func NewPlayer(name string, level int) (*Unit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if level < startingLevel {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidStats, level)
	}
	u := &Unit{
		Kind:  KindPlayer,
		Name:  name,
		Glyph: glyphFor(name, unicode.ToUpper),
		Level: level,
	}
	u.ToFullHealth()
	return u, nil
}

// NewMonster creates a monster with fixed max health and attack, at full health.
// The glyph is the lower-cased first letter of the name.
func NewMonster(name string, maxHealth, attack int) (*Unit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if maxHealth <= 0 || attack < 0 {
		return nil, fmt.Errorf("%w: health %d, attack %d", ErrInvalidStats, maxHealth, attack)
	}
	u := &Unit{
		Kind:      KindMonster,
		Name:      name,
		Glyph:     glyphFor(name, unicode.ToLower),
		maxHealth: maxHealth,
		attack:    attack,
	}
	u.ToFullHealth()
	return u, nil
}

// IsPlayer returns true for the player variant.
func (u *Unit) IsPlayer() bool { return u.Kind == KindPlayer }

// MaxHealth returns the health restored by ToFullHealth.
func (u *Unit) MaxHealth() int {
	if u.Kind == KindPlayer {
		return baseMaxHealth + maxHealthPerLevel*u.Level
	}
	return u.maxHealth
}

// AttackDamage returns the damage dealt by one strike.
func (u *Unit) AttackDamage() int {
	if u.Kind == KindPlayer {
		return baseAttackDamage + u.Level + u.Bonus
	}
	return u.attack
}

// IsDefeated returns true once health has dropped to zero or below.
func (u *Unit) IsDefeated() bool { return u.Health <= 0 }

// ToFullHealth restores health to MaxHealth.
func (u *Unit) ToFullHealth() { u.Health = u.MaxHealth() }

// TakeDamage subtracts the amount from health without any floor.
func (u *Unit) TakeDamage(amount int) {
	u.Health -= amount
}

// IncrementLevel raises the player level by one.
func (u *Unit) IncrementLevel() { u.Level++ }

// IncrementBonus raises the temporary attack bonus by one.
func (u *Unit) IncrementBonus() { u.Bonus++ }

// ResetBonus clears the temporary attack bonus.
func (u *Unit) ResetBonus() { u.Bonus = 0 }

// HealthString formats health as "name current/max".
func (u *Unit) HealthString() string {
	return fmt.Sprintf("%s %d/%d", u.Name, u.Health, u.MaxHealth())
}

func glyphFor(name string, caseFn func(rune) rune) rune {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return fallbackGlyph
	}
	return caseFn(r)
}
