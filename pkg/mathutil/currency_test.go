package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"round down", 1.234, 1.23},
		{"round up", 1.235, 1.24},
		{"round half up", 1.005, 1.0},
		{"negative round", -1.234, -1.23},
		{"zero", 0.0, 0.0},
		{"already rounded", 5.67, 5.67},
		{"large value", 123456.789, 123456.79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"exact zero", 0.0, true},
		{"within tolerance positive", 0.005, true},
		{"within tolerance negative", -0.005, true},
		{"at tolerance", 0.01, true},
		{"above tolerance", 0.011, false},
		{"clearly nonzero", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"equal values", 5.0, 5.0, 0.01, true},
		{"within tolerance", 5.0, 5.005, 0.01, true},
		{"outside tolerance", 5.0, 5.02, 0.01, false},
		{"negative values within", -5.0, -5.005, 0.01, true},
		{"zero tolerance equal", 3.3, 3.3, 0.0, true},
		{"zero tolerance unequal", 3.3, 3.30001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(tt.val1, tt.val2, tt.tolerance); result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestClampResidue(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"exact zero", 0.0, 0.0},
		{"tiny positive residue", 1e-10, 0.0},
		{"tiny negative residue", -1e-10, 0.0},
		{"just under epsilon", 9e-7, 0.0},
		{"at epsilon", 1e-6, 1e-6},
		{"genuine sub-dollar balance", 0.42, 0.42},
		{"normal balance", 1500.55, 1500.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampResidue(tt.input); result != tt.expected {
				t.Errorf("ClampResidue(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(2.5, 3.5); got != 2.5 {
		t.Errorf("Min(2.5, 3.5) = %v, expected 2.5", got)
	}
	if got := Min(4.0, -1.0); got != -1.0 {
		t.Errorf("Min(4.0, -1.0) = %v, expected -1.0", got)
	}
	if got := Max(2.5, 3.5); got != 3.5 {
		t.Errorf("Max(2.5, 3.5) = %v, expected 3.5", got)
	}
	if got := Max(4.0, -1.0); got != 4.0 {
		t.Errorf("Max(4.0, -1.0) = %v, expected 4.0", got)
	}
}
