// Package spatial provides 2D integer coordinates and Euclidean distance.
package spatial

import "math"

// Pos is a 2D coordinate. Combatants carry one, but combat resolution
// never consults it.
type Pos struct {
	X, Y int32
}

// New creates a position at the given coordinates.
func New(x, y int32) Pos {
	return Pos{X: x, Y: y}
}

// MoveTo replaces the coordinates.
func (p *Pos) MoveTo(x, y int32) {
	p.X = x
	p.Y = y
}

// Dist returns the Euclidean distance between two positions.
func (p Pos) Dist(other Pos) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Located is anything that can be placed in 2D space.
type Located interface {
	Pos() Pos
	SetPos(Pos)
}

// Distance returns the Euclidean distance between two located entities.
func Distance(a, b Located) float64 {
	return a.Pos().Dist(b.Pos())
}
