package question

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{2.45, 2.5},
		{2.44, 2.4},
		{0.15, 0.2},
		{-2.45, -2.5},
		{7, 7},
		{19.95, 20},
	}

	for _, tt := range tests {
		if got := RoundHalfUp(tt.input); got != tt.expected {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestOperandString(t *testing.T) {
	tests := []struct {
		operand  Operand
		expected string
	}{
		{IntOperand(0), "0"},
		{IntOperand(-7), "-7"},
		{RealOperand(2.5), "2.5"},
		{RealOperand(3), "3.0"},
		{RealOperand(-0.4), "-0.4"},
		{RealOperand(-12.35), "-12.4"},
	}

	for _, tt := range tests {
		if got := tt.operand.String(); got != tt.expected {
			t.Errorf("Operand(%d).String() = %q, want %q", tt.operand.Tenths, got, tt.expected)
		}
	}
}

func TestFormatTenths(t *testing.T) {
	tests := []struct {
		tenths   int64
		expected string
	}{
		{50, "5"},
		{46, "4.6"},
		{-5, "-0.5"},
		{-120, "-12"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatTenths(tt.tenths, false); got != tt.expected {
			t.Errorf("formatTenths(%d) = %q, want %q", tt.tenths, got, tt.expected)
		}
	}
}

func TestOperatorValidate(t *testing.T) {
	for _, op := range []Operator{Add, Subtract, Multiply, Divide} {
		if err := op.Validate(); err != nil {
			t.Errorf("Operator(%q).Validate() = %v, want nil", op, err)
		}
	}
	if err := Operator("%").Validate(); err == nil {
		t.Error("Operator(\"%\").Validate() should fail")
	}
}
