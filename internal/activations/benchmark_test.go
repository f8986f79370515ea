// Package activations provides benchmarks for activation functions.
package activations

import (
	"math/rand"
	"testing"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	for i := range slice {
		slice[i] = rand.Float64()*2 - 1
	}
}

// BenchmarkReLUActivate benchmarks the ReLU activation function.
func BenchmarkReLUActivate(b *testing.B) {
	relu := ReLU{}
	inputs := make([]float64, 1000)
	fillRandom(inputs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range inputs {
			relu.Activate(x)
		}
	}
}

// BenchmarkReLUDerivative benchmarks the ReLU derivative function.
func BenchmarkReLUDerivative(b *testing.B) {
	relu := ReLU{}
	inputs := make([]float64, 1000)
	fillRandom(inputs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range inputs {
			relu.Derivative(x)
		}
	}
}
