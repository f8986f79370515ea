// Package opt provides unit tests for the optimizer and schedulers.
package opt

import (
	"math"
	"testing"
)

// TestSGDLearningRate tests reading and replacing the rate.
func TestSGDLearningRate(t *testing.T) {
	sgd := NewSGD(0.1)
	if sgd.GetLR() != 0.1 {
		t.Errorf("GetLR() = %v, want 0.1", sgd.GetLR())
	}
	sgd.SetLR(0.02)
	if sgd.LearningRate != 0.02 {
		t.Errorf("LearningRate = %v, want 0.02", sgd.LearningRate)
	}
}

// TestStepLR tests step decay.
func TestStepLR(t *testing.T) {
	sgd := NewSGD(1)
	s := NewStepLR(sgd, 2, 0.5)

	want := []float64{1, 0.5, 0.5, 0.25}
	for i, w := range want {
		s.Step()
		if got := s.GetLR(); math.Abs(got-w) > 1e-12 {
			t.Errorf("after step %d: lr = %v, want %v", i+1, got, w)
		}
	}
}

// TestExponentialLR tests exponential decay.
func TestExponentialLR(t *testing.T) {
	sgd := NewSGD(1)
	s := NewExponentialLR(sgd, 0.9)
	s.Step()
	s.Step()

	if got := sgd.GetLR(); math.Abs(got-0.81) > 1e-12 {
		t.Errorf("lr = %v, want 0.81", got)
	}
}

// TestReduceLROnPlateau tests reduction after stalled loss.
func TestReduceLROnPlateau(t *testing.T) {
	sgd := NewSGD(0.1)
	s := NewReduceLROnPlateau(sgd, 0.5, 2, 0, 0.03)

	s.StepWithLoss(1.0) // best
	s.StepWithLoss(1.0) // bad 1
	if sgd.GetLR() != 0.1 {
		t.Fatalf("lr reduced too early: %v", sgd.GetLR())
	}
	s.StepWithLoss(1.0) // bad 2 -> reduce
	if got := sgd.GetLR(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("lr = %v, want 0.05", got)
	}
	s.StepWithLoss(1.0)
	s.StepWithLoss(1.0) // reduce again, clamped to minLR
	if got := sgd.GetLR(); math.Abs(got-0.03) > 1e-12 {
		t.Errorf("lr = %v, want 0.03", got)
	}
}
