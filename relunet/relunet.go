// Package relunet re-exports the network engine for use outside this module.
package relunet

import (
	"github.com/FlavioCFOliveira/relunet/internal/layer"
	"github.com/FlavioCFOliveira/relunet/internal/loss"
	"github.com/FlavioCFOliveira/relunet/internal/net"
	"github.com/FlavioCFOliveira/relunet/internal/opt"
)

// Re-export common types for easier access
type (
	Network      = net.Network
	TrainingData = net.TrainingData
	Prediction   = net.Prediction
	Option       = net.Option
	Callback     = net.Callback
	Dense        = layer.Dense
	Stack        = layer.Stack
	Scheduler    = opt.Scheduler
)

// Errors
var (
	ErrEmptyStack      = layer.ErrEmptyStack
	ErrInvalidSize     = layer.ErrInvalidSize
	ErrWidthMismatch   = layer.ErrWidthMismatch
	ErrMalformedSample = net.ErrMalformedSample
	ErrUndersizedInput = net.ErrUndersizedInput
)

// Network creation
func New(numInputs, numHidden, numOutputs, numEpochs int, learningRate float64, opts ...Option) *Network {
	return net.New(numInputs, numHidden, numOutputs, numEpochs, learningRate, opts...)
}

// Options
var (
	WithSeed      = net.WithSeed
	WithRand      = net.WithRand
	WithCallbacks = net.WithCallbacks
	WithLogger    = net.WithLogger
)

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}

func EarlyStopping(patience int, minDelta float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, minDelta)
}

func SchedulerCallback(scheduler Scheduler) Callback {
	return net.NewSchedulerCallback(scheduler)
}

// Schedulers
func StepLR(o opt.Optimizer, stepSize int, gamma float64) Scheduler {
	return opt.NewStepLR(o, stepSize, gamma)
}

func ExponentialLR(o opt.Optimizer, gamma float64) Scheduler {
	return opt.NewExponentialLR(o, gamma)
}

func ReduceLROnPlateau(o opt.Optimizer, factor float64, patience int, threshold, minLR float64) Scheduler {
	return opt.NewReduceLROnPlateau(o, factor, patience, threshold, minLR)
}

// Losses
var MSE = loss.MSE{}
