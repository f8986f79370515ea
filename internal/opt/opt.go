// Package opt provides the gradient descent rule and learning rate schedules.
package opt

// Optimizer holds the learning rate applied by parameter updates.
type Optimizer interface {
	GetLR() float64
	SetLR(lr float64)
}

// SGD (Stochastic Gradient Descent) with a per-sample update.
// Layers apply bias += error*lr and weight += error*lr*input.
type SGD struct {
	LearningRate float64
}

// NewSGD creates an SGD optimizer with the given learning rate.
func NewSGD(learningRate float64) *SGD {
	return &SGD{LearningRate: learningRate}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.LearningRate
}

// SetLR replaces the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.LearningRate = lr
}
