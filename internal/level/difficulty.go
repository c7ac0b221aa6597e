// Package level defines the rooms of the house, the difficulty tiers and the
// ordered list of levels a session plays through.
package level

import (
	"fmt"

	"github.com/samdwyer/littleprofessor/internal/question"
)

// Difficulty fixes the numeric domain of a level's questions.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

// String returns the tier name used in level definitions.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a tier name to its Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Bounds returns the inclusive operand range of the tier.
func (d Difficulty) Bounds() (lower, upper int) {
	switch d {
	case Intermediate:
		return 0, 20
	case Advanced:
		return -20, 20
	default:
		return 0, 10
	}
}

// AllowFractional reports whether operands may carry a decimal place.
func (d Difficulty) AllowFractional() bool {
	return d != Beginner
}

// Domain converts the tier into a question domain. Beginners never get
// negative subtraction results.
func (d Difficulty) Domain() question.Domain {
	lower, upper := d.Bounds()
	return question.Domain{
		Lower:       lower,
		Upper:       upper,
		Fractional:  d.AllowFractional(),
		NonNegative: d == Beginner,
	}
}
