package spatial

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Pos
		want float64
	}{
		{"same point", New(0, 0), New(0, 0), 0},
		{"pythagorean triple", New(0, 0), New(3, 4), 5},
		{"negative coordinates", New(-3, -4), New(0, 0), 5},
		{"unit diagonal", New(0, 0), New(1, 1), math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dist(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistSymmetric(t *testing.T) {
	a, b := New(12, 50), New(72, 150)
	if a.Dist(b) != b.Dist(a) {
		t.Error("distance is not symmetric")
	}
}

func TestMoveTo(t *testing.T) {
	p := New(1, 2)
	p.MoveTo(-7, 9)
	if p.X != -7 || p.Y != 9 {
		t.Errorf("MoveTo left position at %v", p)
	}
}

type fixedPoint struct{ pos Pos }

func (f *fixedPoint) Pos() Pos       { return f.pos }
func (f *fixedPoint) SetPos(pos Pos) { f.pos = pos }

func TestDistanceBetweenLocated(t *testing.T) {
	a := &fixedPoint{pos: New(0, 0)}
	b := &fixedPoint{pos: New(3, 4)}
	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
