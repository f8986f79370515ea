// Package net provides the network, its training data and training callbacks.
package net

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/relunet/internal/layer"
	"github.com/FlavioCFOliveira/relunet/internal/loss"
	"github.com/FlavioCFOliveira/relunet/internal/opt"
)

// Network is a stack of hidden dense layers followed by an output layer,
// trained one sample at a time.
type Network struct {
	hidden *layer.Stack
	output *layer.Dense
	data   *TrainingData

	// input is the sample of the last Feedforward. It belongs to the caller
	// and is only valid until the next Feedforward or structural change.
	input []float64

	numInputs  int
	numOutputs int
	numEpochs  int
	sgd        *opt.SGD
	loss       loss.Loss
	callbacks  []Callback
}

// Option configures a Network at construction.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	callbacks []Callback
	logger    *log.Logger
}

// WithSeed seeds the random source used for initialization and shuffling.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for initialization and shuffling.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithCallbacks attaches training callbacks.
func WithCallbacks(cbs ...Callback) Option {
	return func(c *config) {
		c.callbacks = append(c.callbacks, cbs...)
	}
}

// WithLogger sets the logger receiving training data diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New creates a network with one hidden layer of numHidden nodes.
// More hidden layers can be added with AddHiddenLayer.
func New(numInputs, numHidden, numOutputs, numEpochs int, learningRate float64, opts ...Option) *Network {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(os.Stderr, "trainingdata: ", 0)
	}

	data := NewTrainingData(numInputs, numOutputs, cfg.rng)
	data.SetLogger(cfg.logger)

	return &Network{
		hidden:     layer.NewStack(numHidden, numInputs, cfg.rng),
		output:     layer.NewDense(numOutputs, numHidden, cfg.rng),
		data:       data,
		numInputs:  numInputs,
		numOutputs: numOutputs,
		numEpochs:  numEpochs,
		sgd:        opt.NewSGD(learningRate),
		loss:       loss.MSE{},
		callbacks:  cfg.callbacks,
	}
}

// AddHiddenLayer appends a hidden layer of the given width and resizes the
// output layer to read from it.
func (n *Network) AddHiddenLayer(nodes int) error {
	return n.AddHiddenLayers(1, nodes)
}

// AddHiddenLayers appends count hidden layers of the given width.
func (n *Network) AddHiddenLayers(count, nodes int) error {
	if err := n.hidden.AppendLayers(count, nodes); err != nil {
		return errors.Wrap(err, "add hidden layers")
	}
	n.rewireOutput()
	return nil
}

// RemoveHiddenLayer drops the last hidden layer. The first hidden layer
// cannot be removed.
func (n *Network) RemoveHiddenLayer() error {
	if err := n.hidden.Pop(); err != nil {
		return errors.Wrap(err, "remove hidden layer")
	}
	n.rewireOutput()
	return nil
}

func (n *Network) rewireOutput() {
	last, _ := n.hidden.Last()
	n.output.Resize(n.numOutputs, last.NodeCount())
	n.input = nil
}

// SetTrainingData replaces the training samples with copies of x and y.
func (n *Network) SetTrainingData(x, y [][]float64) {
	n.data.Assign(x, y)
}

// LoadTrainingData appends the samples of a text training file.
func (n *Network) LoadTrainingData(path string) (int, error) {
	return n.data.LoadFile(path)
}

// TrainingData returns the network's training samples.
func (n *Network) TrainingData() *TrainingData {
	return n.data
}

// Train runs numEpochs epochs. Each epoch shuffles the training order and
// performs one feedforward, backpropagation and update per sample.
func (n *Network) Train() {
	for _, cb := range n.callbacks {
		cb.OnTrainBegin(n)
	}

	for epoch := 0; epoch < n.numEpochs; epoch++ {
		for _, cb := range n.callbacks {
			cb.OnEpochBegin(epoch, n)
		}

		n.data.Shuffle()
		for _, k := range n.data.order {
			n.Feedforward(n.data.x[k])
			n.Backpropagate(n.data.y[k])
			n.Optimize()
		}

		if len(n.callbacks) > 0 && n.endEpoch(epoch) {
			break
		}
	}

	for _, cb := range n.callbacks {
		cb.OnTrainEnd(n)
	}
}

func (n *Network) endEpoch(epoch int) bool {
	l := n.MeanSquaredError()
	stop := false
	for _, cb := range n.callbacks {
		cb.OnEpochEnd(epoch, l, n)
		if s, ok := cb.(Stopper); ok && s.ShouldStop() {
			stop = true
		}
	}
	return stop
}

// Feedforward computes the outputs of every layer for input. Inputs shorter
// than the network's input width are ignored and the previous outputs kept.
func (n *Network) Feedforward(input []float64) {
	if len(input) < n.numInputs {
		return
	}
	n.input = input
	n.hidden.Feedforward(input)
	n.output.Feedforward(n.hidden.Output())
}

// Backpropagate computes every layer's error against the expected output.
func (n *Network) Backpropagate(reference []float64) {
	n.output.CompareWithReference(reference)
	n.hidden.Backpropagate(n.output)
}

// Optimize updates all parameters from the errors of the last
// Backpropagate, using the input of the last Feedforward.
func (n *Network) Optimize() {
	if n.input == nil {
		return
	}
	lr := n.sgd.GetLR()
	n.output.Optimize(n.hidden.Output(), lr)
	n.hidden.Optimize(n.input, lr)
}

// Predict runs a forward pass and returns the output layer's buffer.
// The slice is overwritten by the next forward pass; copy it to keep it.
func (n *Network) Predict(input []float64) []float64 {
	n.Feedforward(input)
	return n.output.Output()
}

// MeanSquaredError returns the mean loss over the training samples.
func (n *Network) MeanSquaredError() float64 {
	sets := n.data.Sets()
	if sets == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < sets; i++ {
		x, y := n.data.Sample(i)
		pred := n.Predict(x)
		k := min(len(pred), len(y))
		sum += n.loss.Forward(pred[:k], y[:k])
	}
	return sum / float64(sets)
}

// AddCallback attaches a training callback.
func (n *Network) AddCallback(cb Callback) {
	n.callbacks = append(n.callbacks, cb)
}

// Validate checks that every layer's weight count matches the width it is
// fed with. Training does not call it.
func (n *Network) Validate() error {
	first, err := n.hidden.First()
	if err != nil {
		return err
	}
	if first.WeightCount() != n.numInputs {
		return errors.Wrapf(layer.ErrWidthMismatch, "first hidden layer has %d weights for %d inputs",
			first.WeightCount(), n.numInputs)
	}
	if err := n.hidden.Validate(); err != nil {
		return err
	}
	last, _ := n.hidden.Last()
	if n.output.WeightCount() != last.NodeCount() {
		return errors.Wrapf(layer.ErrWidthMismatch, "output layer has %d weights, last hidden layer %d nodes",
			n.output.WeightCount(), last.NodeCount())
	}
	return nil
}

// Hidden returns the hidden layer stack.
func (n *Network) Hidden() *layer.Stack {
	return n.hidden
}

// OutputLayer returns the output layer.
func (n *Network) OutputLayer() *layer.Dense {
	return n.output
}

// Optimizer returns the optimizer holding the learning rate.
func (n *Network) Optimizer() *opt.SGD {
	return n.sgd
}

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 {
	return n.sgd.GetLR()
}

// NumInputs returns the input width.
func (n *Network) NumInputs() int {
	return n.numInputs
}

// NumOutputs returns the output width.
func (n *Network) NumOutputs() int {
	return n.numOutputs
}

// NumEpochs returns the number of epochs Train runs.
func (n *Network) NumEpochs() int {
	return n.numEpochs
}

// SetEpochs changes the number of epochs Train runs.
func (n *Network) SetEpochs(epochs int) {
	n.numEpochs = epochs
}
