// Package entity provides the actors and pickups that occupy the grid.
package entity

// Position is a cell coordinate. X is the column, Y is the row.
type Position struct {
	X, Y int
}

// At returns true if the position is the given cell.
func (p Position) At(x, y int) bool {
	return p.X == x && p.Y == y
}

// Shift returns the position moved by the given delta.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// SetPosition updates the position in place.
func (p *Position) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Move updates the position by the given delta.
func (p *Position) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}
