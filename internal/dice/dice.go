// Package dice provides the numeric primitives behind every probabilistic
// decision in a duel: bounded normalization, exponential decay, Bernoulli
// trials and centered uniform rolls.
package dice

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrOutOfRange is returned when a value cannot be normalized into [0,1].
var ErrOutOfRange = errors.New("value must be between 0 and 1")

// ErrNegativeProba is returned by CheckProba for negative probabilities.
var ErrNegativeProba = errors.New("probability can't be less than zero")

// Normalize maps v into [0,1] by order of magnitude:
//   - v in [0,1] is returned as is
//   - v in (1,100] is treated as a percentage and divided by 100
//   - v above 100 saturates to 1.0
//   - negative v is an error
func Normalize(v float64) (float64, error) {
	switch {
	case v >= 0 && v <= 1:
		return v, nil
	case v > 1 && v <= 100:
		return v / 100, nil
	case v > 100:
		return 1.0, nil
	default:
		return 0, ErrOutOfRange
	}
}

// Round rounds x to n fractional decimal places, halves away from zero.
func Round(x float64, n int) float64 {
	multiplier := math.Pow(10, float64(n))
	return math.Round(x*multiplier) / multiplier
}

// ExpDecay returns v scaled down exponentially by factor f at rate k:
// v * e^(-k*f). With v=50, f=100 and k=0.0217 the result is about 5.708;
// the higher the factor, the stronger the reduction.
func ExpDecay(v, f, k float64) float64 {
	return v * math.Exp(-k*f)
}

// Roller draws the random values consumed by combat resolution. It wraps a
// seeded rand.Rand so duels can be replayed deterministically in tests.
// A Roller is not safe for concurrent use; the combat loop is synchronous.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller from the given seed.
// A seed of 0 means a time-based seed will be generated.
func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// CheckProba runs a Bernoulli trial against p and reports whether the event
// occurred. Negative p is an error; p above 1 is first routed through
// Normalize so percentage values like 33.33 behave as 0.3333.
func (r *Roller) CheckProba(p float64) (bool, error) {
	if p < 0 {
		return false, ErrNegativeProba
	}
	if p > 1 {
		normalized, err := Normalize(p)
		if err != nil {
			return false, err
		}
		p = normalized
	}
	return r.rng.Float64() < p, nil
}

// CentredRand draws a uniform value centered on c. The half-width of the
// range is c/f, ceiled up to at least 1 when the quotient falls below 1;
// smaller fractions give wider spreads. f must be greater than zero.
func (r *Roller) CentredRand(c, f float64) float64 {
	half := c / f
	if half < 1 {
		half = math.Ceil(half)
	}
	from := c - half
	to := c + half
	return from + r.rng.Float64()*(to-from)
}
