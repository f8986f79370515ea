package net

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/FlavioCFOliveira/relunet/internal/opt"
)

// Callback defines the interface for training callbacks.
// loss is the mean squared error over the training samples after the epoch.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, loss float64, n *Network)
}

// Stopper is implemented by callbacks that can end training early.
// Train checks it after every epoch.
type Stopper interface {
	ShouldStop() bool
}

// SchedulerCallback is a callback that wraps a learning rate scheduler.
type SchedulerCallback struct {
	BaseCallback
	scheduler opt.Scheduler
}

func NewSchedulerCallback(scheduler opt.Scheduler) *SchedulerCallback {
	return &SchedulerCallback{scheduler: scheduler}
}

func (c *SchedulerCallback) OnEpochEnd(epoch int, loss float64, n *Network) {
	c.scheduler.Step()
	c.scheduler.StepWithLoss(loss)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network) {}
func (c BaseCallback) OnTrainEnd(n *Network) {}
func (c BaseCallback) OnEpochBegin(epoch int, n *Network) {}
func (c BaseCallback) OnEpochEnd(epoch int, loss float64, n *Network) {}

// EarlyStopping stops training when the loss has stopped improving.
type EarlyStopping struct {
	BaseCallback
	Patience  int
	Threshold float64

	bestLoss     float64
	numBadEpochs int
	Stopped      bool
}

func NewEarlyStopping(patience int, threshold float64) *EarlyStopping {
	return &EarlyStopping{
		Patience:  patience,
		Threshold: threshold,
		bestLoss:  math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, loss float64, n *Network) {
	if loss < c.bestLoss-c.Threshold {
		c.bestLoss = loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		fmt.Printf("\nEarly stopping at epoch %d: loss %.6f did not improve for %d epochs\n", epoch, loss, c.Patience)
		c.Stopped = true
	}
}

// ShouldStop reports whether the patience has run out.
func (c *EarlyStopping) ShouldStop() bool {
	return c.Stopped
}

// Logger logs training progress every Interval epochs. Out defaults to stdout.
type Logger struct {
	BaseCallback
	Interval int
	Out      io.Writer
}

func (c Logger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		out := c.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintf(out, "Epoch %d: loss = %.6f\n", epoch, loss)
	}
}
