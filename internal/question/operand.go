package question

import (
	"math"
	"strconv"
	"strings"
)

// Operand is a number with at most one decimal place, stored as exact tenths.
// Fractional operands always print one decimal ("3.0", "2.5"); integral
// operands print without one.
type Operand struct {
	Tenths     int64
	Fractional bool
}

// IntOperand returns an integral operand.
func IntOperand(v int) Operand {
	return Operand{Tenths: int64(v) * 10}
}

// RealOperand rounds v half-up to one decimal place.
func RealOperand(v float64) Operand {
	return Operand{Tenths: roundTenths(v), Fractional: true}
}

// Float returns the operand value.
func (o Operand) Float() float64 {
	return float64(o.Tenths) / 10
}

// String formats the operand the way it is shown in a prompt.
func (o Operand) String() string {
	if !o.Fractional {
		return strconv.FormatInt(o.Tenths/10, 10)
	}
	return formatTenths(o.Tenths, true)
}

// RoundHalfUp rounds v to one decimal place, ties away from zero.
// The decision is made on the shortest decimal representation of v, so
// 2.45 rounds to 2.5 even though its binary value is slightly below.
func RoundHalfUp(v float64) float64 {
	return float64(roundTenths(v)) / 10
}

func roundTenths(v float64) int64 {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0
	}
	t := n * 10
	if len(frac) > 0 {
		t += int64(frac[0] - '0')
	}
	if len(frac) > 1 && frac[1] >= '5' {
		t++
	}
	if v < 0 {
		t = -t
	}
	return t
}

// roundHundredths turns hundredths into tenths, ties away from zero.
func roundHundredths(h int64) int64 {
	if h < 0 {
		return -((-h + 5) / 10)
	}
	return (h + 5) / 10
}

// formatTenths prints a tenths value. With keepDecimal unset, whole numbers
// lose their ".0".
func formatTenths(t int64, keepDecimal bool) string {
	neg := t < 0
	if neg {
		t = -t
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(t/10, 10))
	if d := t % 10; d != 0 || keepDecimal {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(d, 10))
	}
	return b.String()
}
