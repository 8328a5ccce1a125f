package dice

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"already normalized", 0.5, 0.5},
		{"percentage", 33.33, 0.3333},
		{"hundred", 100, 1},
		{"above hundred", 150, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNegative(t *testing.T) {
	if _, err := Normalize(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Normalize(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{3.141592, 2, 3.14},
		{2.5, 0, 3},     // halves round away from zero
		{-2.5, 0, -3},
		{5.708, 3, 5.708},
		{0.91578, 2, 0.92},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	once := Round(3.1415926, 3)
	if twice := Round(once, 3); twice != once {
		t.Errorf("Round is not idempotent: %v != %v", twice, once)
	}
}

func TestExpDecay(t *testing.T) {
	// 50 incoming damage against 100 armor at k=0.0217 leaves about 5.708.
	got := ExpDecay(50, 100, 0.0217)
	if math.Abs(got-5.708) > 1e-2 {
		t.Errorf("ExpDecay(50, 100, 0.0217) = %v, want ~5.708", got)
	}
}

func TestExpDecayZeroFactor(t *testing.T) {
	if got := ExpDecay(50, 0, 0.04); got != 50 {
		t.Errorf("ExpDecay(50, 0, 0.04) = %v, want 50", got)
	}
}

func TestCheckProbaNegative(t *testing.T) {
	roller := NewRoller(1)
	if _, err := roller.CheckProba(-1); !errors.Is(err, ErrNegativeProba) {
		t.Errorf("CheckProba(-1) error = %v, want ErrNegativeProba", err)
	}
}

func TestCheckProbaDegenerate(t *testing.T) {
	roller := NewRoller(1)
	for i := 0; i < 1000; i++ {
		hit, err := roller.CheckProba(0)
		if err != nil {
			t.Fatalf("CheckProba(0) returned error: %v", err)
		}
		if hit {
			t.Fatal("CheckProba(0) realized an impossible event")
		}
	}
	for i := 0; i < 1000; i++ {
		hit, err := roller.CheckProba(1)
		if err != nil {
			t.Fatalf("CheckProba(1) returned error: %v", err)
		}
		if !hit {
			t.Fatal("CheckProba(1) missed a certain event")
		}
	}
}

// Percentage values above 1 are normalized, not rejected: 33.33 behaves
// exactly like 0.3333, and saturating values like 101 become certain.
func TestCheckProbaPercentage(t *testing.T) {
	a := NewRoller(99)
	b := NewRoller(99)
	for i := 0; i < 1000; i++ {
		gotA, err := a.CheckProba(33.33)
		if err != nil {
			t.Fatalf("CheckProba(33.33) returned error: %v", err)
		}
		gotB, err := b.CheckProba(0.3333)
		if err != nil {
			t.Fatalf("CheckProba(0.3333) returned error: %v", err)
		}
		if gotA != gotB {
			t.Fatalf("draw %d: CheckProba(33.33)=%t but CheckProba(0.3333)=%t", i, gotA, gotB)
		}
	}

	roller := NewRoller(7)
	hit, err := roller.CheckProba(101)
	if err != nil {
		t.Fatalf("CheckProba(101) returned error: %v", err)
	}
	if !hit {
		t.Error("CheckProba(101) should saturate to a certain event")
	}
}

func TestCheckProbaFrequency(t *testing.T) {
	const (
		p      = 0.3
		trials = 100000
	)
	roller := NewRoller(42)
	hits := 0
	for i := 0; i < trials; i++ {
		hit, err := roller.CheckProba(p)
		if err != nil {
			t.Fatalf("CheckProba(%v) returned error: %v", p, err)
		}
		if hit {
			hits++
		}
	}
	freq := float64(hits) / trials
	if math.Abs(freq-p) > 0.02 {
		t.Errorf("empirical frequency %v too far from %v", freq, p)
	}
}

func TestCentredRandBounds(t *testing.T) {
	tests := []struct {
		name     string
		c, f     float64
		from, to float64
	}{
		{"wide roll", 40, 8, 35, 45},       // half-width 5
		{"narrow roll", 45, 8, 39.375, 50.625},
		{"half-width below one is ceiled", 0.5, 2, -0.5, 1.5},
	}
	roller := NewRoller(7)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				got := roller.CentredRand(tt.c, tt.f)
				if got < tt.from || got > tt.to {
					t.Fatalf("CentredRand(%v, %v) = %v outside [%v, %v]", tt.c, tt.f, got, tt.from, tt.to)
				}
			}
		})
	}
}

func TestRollerDeterminism(t *testing.T) {
	a := NewRoller(1234)
	b := NewRoller(1234)
	for i := 0; i < 100; i++ {
		if got, want := a.CentredRand(40, 8), b.CentredRand(40, 8); got != want {
			t.Fatalf("draw %d diverged: %v != %v", i, got, want)
		}
	}
}
