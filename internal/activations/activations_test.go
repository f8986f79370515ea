// Package activations provides unit tests for activation functions.
package activations

import (
	"math"
	"testing"
)

// TestReLU tests ReLU activation.
func TestReLU(t *testing.T) {
	relu := ReLU{}

	tests := []struct {
		input    float64
		expected float64
	}{
		{-1.0, 0.0},  // Negative -> 0
		{0.0, 0.0},   // Zero -> 0
		{1.0, 1.0},   // Positive -> identity
		{2.5, 2.5},   // Larger positive -> identity
		{-0.1, 0.0},  // Small negative -> 0
		{math.Inf(-1), 0.0},
	}

	for _, tt := range tests {
		output := relu.Activate(tt.input)
		if math.Abs(output-tt.expected) > 1e-12 {
			t.Errorf("ReLU(%v) = %v, want %v", tt.input, output, tt.expected)
		}
	}
}

// TestReLUDerivative tests ReLU derivative.
func TestReLUDerivative(t *testing.T) {
	relu := ReLU{}

	tests := []struct {
		input    float64
		expected float64
	}{
		{-1.0, 0.0}, // Negative -> 0
		{0.0, 0.0},  // At zero, derivative is 0 (x must be > 0)
		{1.0, 1.0},  // Positive -> 1
		{2.5, 1.0},  // Larger positive -> 1
	}

	for _, tt := range tests {
		output := relu.Derivative(tt.input)
		if output != tt.expected {
			t.Errorf("ReLU.Derivative(%v) = %v, want %v", tt.input, output, tt.expected)
		}
	}
}

// TestReLUProperties checks relu >= 0, relu' in {0,1} and relu'(relu(x)) == 1 iff x > 0.
func TestReLUProperties(t *testing.T) {
	relu := ReLU{}
	for x := -5.0; x <= 5.0; x += 0.25 {
		y := relu.Activate(x)
		if y < 0 {
			t.Errorf("ReLU(%v) = %v, want >= 0", x, y)
		}
		d := relu.Derivative(x)
		if d != 0 && d != 1 {
			t.Errorf("ReLU.Derivative(%v) = %v, want 0 or 1", x, d)
		}
		if got, want := relu.Derivative(y) == 1, x > 0; got != want {
			t.Errorf("ReLU.Derivative(ReLU(%v)) == 1 is %v, want %v", x, got, want)
		}
	}
}
