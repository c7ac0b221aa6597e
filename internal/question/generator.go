package question

import (
	"errors"
	"fmt"
)

// maxAttempts bounds rejection sampling. A random source finds a valid pair
// within a handful of draws; only a constant source can exhaust it.
const maxAttempts = 10000

// ErrNoValidOperands is returned when no operand pair satisfies the
// constraints of the operator and domain.
var ErrNoValidOperands = errors.New("question: no valid operands")

// Domain is the numeric range questions are drawn from.
type Domain struct {
	Lower      int
	Upper      int
	Fractional bool // operands may carry one decimal place
	// NonNegative rejects subtractions whose result would be negative.
	NonNegative bool
}

// Question is a single prompt with its expected answer.
type Question struct {
	Left     Operand
	Right    Operand
	Operator Operator
	Prompt   string
	Answer   string
}

// Generator creates questions and remembers the last one.
type Generator struct {
	src  Source
	last Question
}

// NewGenerator creates a generator drawing numbers from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate draws operands until they satisfy the operator's constraints and
// computes the answer.
func (g *Generator) Generate(op Operator, d Domain) (Question, error) {
	if err := op.Validate(); err != nil {
		return Question{}, err
	}

	fractional := d.Fractional && g.src.Fractional()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		left, right := g.draw(d, fractional)
		if !acceptable(op, d, left, right) {
			continue
		}
		q := Question{
			Left:     left,
			Right:    right,
			Operator: op,
			Prompt:   left.String() + " " + op.String() + " " + right.String(),
			Answer:   formatTenths(evaluate(op, left, right), false),
		}
		g.last = q
		return q, nil
	}
	return Question{}, fmt.Errorf("%w: %s in [%d, %d]", ErrNoValidOperands, op, d.Lower, d.Upper)
}

// Answer returns the answer of the last generated question.
func (g *Generator) Answer() string {
	return g.last.Answer
}

func (g *Generator) draw(d Domain, fractional bool) (Operand, Operand) {
	if fractional {
		return RealOperand(g.src.Real(d.Lower, d.Upper)), RealOperand(g.src.Real(d.Lower, d.Upper))
	}
	return IntOperand(g.src.Int(d.Lower, d.Upper)), IntOperand(g.src.Int(d.Lower, d.Upper))
}

func acceptable(op Operator, d Domain, left, right Operand) bool {
	lo, hi := int64(d.Lower)*10, int64(d.Upper)*10
	for _, o := range []Operand{left, right} {
		if o.Tenths < lo || o.Tenths > hi {
			return false
		}
	}
	switch op {
	case Subtract:
		if d.NonNegative && left.Tenths < right.Tenths {
			return false
		}
	case Divide:
		if right.Tenths == 0 || left.Tenths%right.Tenths != 0 {
			return false
		}
	}
	return true
}

// evaluate returns the result in tenths. Products are rounded half-up.
func evaluate(op Operator, left, right Operand) int64 {
	switch op {
	case Add:
		return left.Tenths + right.Tenths
	case Subtract:
		return left.Tenths - right.Tenths
	case Multiply:
		return roundHundredths(left.Tenths * right.Tenths)
	case Divide:
		return left.Tenths / right.Tenths * 10
	}
	return 0
}
