package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"small amount", 42.5, "$42.50"},
		{"thousands separator", 1234.56, "$1,234.56"},
		{"negative", -1234.56, "-$1,234.56"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"exact thousand", 1000, "$1,000.00"},
		{"three digits", 999.99, "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"positive", 1234.56, "1,234.56"},
		{"negative", -1234.56, "-1,234.56"},
		{"zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"typical rate", 4.5, "4.50%"},
		{"zero rate", 0, "0.00%"},
		{"fractional rate", 5.875, "5.88%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.rate); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected string
	}{
		{"under a year", 6, "6 months"},
		{"exactly a year", 12, "12 months (1.0 years)"},
		{"thirty years", 360, "360 months (30.0 years)"},
		{"eighteen months", 18, "18 months (1.5 years)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.months); got != tt.expected {
				t.Errorf("Term(%d) = %q, expected %q", tt.months, got, tt.expected)
			}
		})
	}
}
