// Package loss provides the error measure reported during training.
package loss

import "gonum.org/v1/gonum/floats"

// Loss is a loss function over a prediction and its expected values.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}
	d := floats.Distance(yPred, yTrue, 2)
	return d * d / float64(n)
}

// Mean averages the loss over paired predictions and targets.
func Mean(l Loss, yPred, yTrue [][]float64) float64 {
	if len(yPred) == 0 {
		return 0
	}
	var sum float64
	for i := range yPred {
		sum += l.Forward(yPred[i], yTrue[i])
	}
	return sum / float64(len(yPred))
}
