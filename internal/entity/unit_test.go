package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "player"},
		{KindMonster, "monster"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("ann", 1)
	require.NoError(t, err)

	assert.Equal(t, KindPlayer, p.Kind)
	assert.Equal(t, 'A', p.Glyph)
	assert.Equal(t, 20, p.MaxHealth())
	assert.Equal(t, 20, p.Health)
	assert.Equal(t, 2, p.AttackDamage())
	assert.Equal(t, 0, p.Bonus)
}

func TestPlayerFormulas(t *testing.T) {
	tests := []struct {
		level, bonus  int
		maxHP, attack int
	}{
		{1, 0, 20, 2},
		{2, 0, 23, 3},
		{5, 3, 32, 9},
	}

	for _, tt := range tests {
		p, err := NewPlayer("Bo", tt.level)
		require.NoError(t, err)
		p.Bonus = tt.bonus

		assert.Equal(t, tt.maxHP, p.MaxHealth(), "level %d max health", tt.level)
		assert.Equal(t, tt.attack, p.AttackDamage(), "level %d bonus %d attack", tt.level, tt.bonus)
	}
}

func TestNewPlayerErrors(t *testing.T) {
	_, err := NewPlayer("", 1)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewPlayer("Ann", 0)
	assert.ErrorIs(t, err, ErrInvalidStats)
}

func TestNewMonster(t *testing.T) {
	m, err := NewMonster("Rat", 5, 1)
	require.NoError(t, err)

	assert.Equal(t, KindMonster, m.Kind)
	assert.Equal(t, 'r', m.Glyph)
	assert.Equal(t, 5, m.MaxHealth())
	assert.Equal(t, 5, m.Health)
	assert.Equal(t, 1, m.AttackDamage())
	assert.False(t, m.IsPlayer())
}

func TestNewMonsterErrors(t *testing.T) {
	tests := []struct {
		name           string
		health, attack int
		want           error
	}{
		{"", 5, 1, ErrEmptyName},
		{"rat", 0, 1, ErrInvalidStats},
		{"rat", 5, -1, ErrInvalidStats},
	}

	for _, tt := range tests {
		_, err := NewMonster(tt.name, tt.health, tt.attack)
		if !errors.Is(err, tt.want) {
			t.Errorf("NewMonster(%q, %d, %d) error = %v, want %v", tt.name, tt.health, tt.attack, err, tt.want)
		}
	}
}

func TestDamageHasNoFloor(t *testing.T) {
	m, err := NewMonster("rat", 3, 1)
	require.NoError(t, err)

	m.TakeDamage(5)
	assert.Equal(t, -2, m.Health)
	assert.True(t, m.IsDefeated())

	m.ToFullHealth()
	assert.Equal(t, 3, m.Health)
	assert.False(t, m.IsDefeated())
}

func TestLevelAndBonus(t *testing.T) {
	p, err := NewPlayer("Ann", 1)
	require.NoError(t, err)

	p.IncrementBonus()
	p.IncrementBonus()
	assert.Equal(t, 4, p.AttackDamage())

	p.IncrementLevel()
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 23, p.MaxHealth())
	assert.Equal(t, 5, p.AttackDamage())

	p.ResetBonus()
	assert.Equal(t, 3, p.AttackDamage())
}

func TestHealthString(t *testing.T) {
	p, err := NewPlayer("Ann", 1)
	require.NoError(t, err)
	p.TakeDamage(3)

	assert.Equal(t, "Ann 17/20", p.HealthString())
}
