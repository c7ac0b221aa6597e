// Package question generates arithmetic questions for the rooms of a level.
package question

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when an operator outside + - * / reaches the
// generator. It indicates a broken level definition, not a player mistake.
var ErrUnknownOperator = errors.New("question: unknown operator")

// Operator is an arithmetic operation symbol as it appears in a prompt.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Validate returns ErrUnknownOperator for anything but the four operators.
func (o Operator) Validate() error {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperator, string(o))
	}
}

// String returns the operator symbol.
func (o Operator) String() string {
	return string(o)
}
