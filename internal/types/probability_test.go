package types

import (
	"math"
	"testing"
)

func TestNormalizeProbability(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "fraction passes through", input: 0.35, expected: 0.35},
		{name: "exactly one stays one", input: 1.0, expected: 1.0},
		{name: "zero", input: 0, expected: 0},
		{name: "percentage", input: 80, expected: 0.8},
		{name: "one hundred percent", input: 100, expected: 1.0},
		{name: "just above one is a percentage", input: 1.5, expected: 0.015},
		{name: "over one hundred percent clamps", input: 250, expected: 1.0},
		{name: "negative clamps to zero", input: -0.2, expected: 0},
		{name: "large negative clamps to zero", input: -40, expected: 0},
		{name: "positive infinity clamps", input: math.Inf(1), expected: 1.0},
		{name: "negative infinity clamps", input: math.Inf(-1), expected: 0},
		{name: "NaN is zero", input: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeProbability(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("NormalizeProbability(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if result < 0 || result > 1 {
				t.Errorf("NormalizeProbability(%v) = %v, outside [0,1]", tt.input, result)
			}
		})
	}
}

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{name: "santiago", coords: NewCoords(-33.4489, -70.6693), want: true},
		{name: "origin", coords: NewCoords(0, 0), want: true},
		{name: "NaN latitude", coords: NewCoords(math.NaN(), -70.6), want: false},
		{name: "infinite longitude", coords: NewCoords(-33.4, math.Inf(1)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
