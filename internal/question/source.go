package question

import (
	"math/rand"
	"time"
)

// Source supplies the random draws used by a Generator. Replacing it fixes
// the numbers without touching the validation and answer logic.
type Source interface {
	// Int returns an integer in the closed interval [lo, hi].
	Int(lo, hi int) int
	// Real returns a real number in [lo, hi].
	Real(lo, hi int) float64
	// Fractional reports whether the next question uses decimal operands.
	Fractional() bool
}

// RandSource draws from a math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source. A seed of 0 means a time based seed.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSource) Int(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *RandSource) Real(lo, hi int) float64 {
	return float64(lo) + s.rng.Float64()*float64(hi-lo)
}

func (s *RandSource) Fractional() bool {
	return s.rng.Intn(2) == 1
}

// FixedSource always returns the same numbers. Fractional questions are
// produced whenever the domain allows them.
type FixedSource struct {
	IntValue  int
	RealValue float64
}

func (s FixedSource) Int(lo, hi int) int { return s.IntValue }

func (s FixedSource) Real(lo, hi int) float64 { return s.RealValue }

func (s FixedSource) Fractional() bool { return true }
