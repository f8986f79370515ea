// Package layer provides the dense layer and the hidden layer stack.
package layer

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/relunet/internal/activations"
)

// Errors returned by structural operations on layers and stacks.
var (
	ErrEmptyStack    = errors.New("layer: stack has no layers")
	ErrInvalidSize   = errors.New("layer: size must be positive")
	ErrWidthMismatch = errors.New("layer: weight count does not match previous layer")
)

// Rand is the random source used to initialize parameters.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Dense is a fully connected layer with one weight row per node.
// Parameters are updated in place by Optimize; there are no gradient buffers.
type Dense struct {
	output  []float64
	bias    []float64
	errs    []float64
	weights [][]float64

	act        activations.Activation
	rng        Rand
	numNodes   int
	numWeights int
}

// NewDense creates a layer with the given node and weight counts.
// Weights and biases are drawn uniformly from [0, 1); outputs and errors start at zero.
func NewDense(nodes, weights int, rng Rand) *Dense {
	d := &Dense{
		act:        activations.ReLU{},
		rng:        rng,
		numNodes:   nodes,
		numWeights: weights,
	}
	d.init()
	return d
}

func (d *Dense) init() {
	d.output = make([]float64, d.numNodes)
	d.bias = make([]float64, d.numNodes)
	d.errs = make([]float64, d.numNodes)
	d.weights = make([][]float64, d.numNodes)
	for i := range d.weights {
		d.weights[i] = d.randomRow(d.numWeights)
		d.bias[i] = d.rng.Float64()
	}
}

func (d *Dense) randomRow(n int) []float64 {
	row := make([]float64, n)
	for j := range row {
		row[j] = d.rng.Float64()
	}
	return row
}

// Feedforward computes output[i] = relu(bias[i] + sum(weights[i][j] * input[j])).
// Only the first min(WeightCount, len(input)) inputs take part in the sum.
func (d *Dense) Feedforward(input []float64) {
	n := min(d.numWeights, len(input))
	x := input[:n]
	for i, w := range d.weights {
		sum := d.bias[i] + floats.Dot(w[:n], x)
		d.output[i] = d.act.Activate(sum)
	}
}

// CompareWithReference computes the error of an output layer against the
// expected values of the current sample.
func (d *Dense) CompareWithReference(reference []float64) {
	n := min(d.numNodes, len(reference))
	for i := 0; i < n; i++ {
		d.errs[i] = (reference[i] - d.output[i]) * d.act.Derivative(d.output[i])
	}
}

// BackpropagateFrom computes the error of a hidden layer from the layer that
// consumes its output. next.WeightCount() must equal d.NodeCount(); weights
// missing from a narrower next layer contribute nothing.
func (d *Dense) BackpropagateFrom(next *Dense) {
	for i := range d.errs {
		var deviation float64
		for j, w := range next.weights {
			if i < len(w) {
				deviation += next.errs[j] * w[i]
			}
		}
		d.errs[i] = deviation * d.act.Derivative(d.output[i])
	}
}

// Optimize moves bias and weights along the stored error.
// input must be the same vector the layer was fed with.
func (d *Dense) Optimize(input []float64, learningRate float64) {
	n := min(d.numWeights, len(input))
	x := input[:n]
	for i, w := range d.weights {
		delta := d.errs[i] * learningRate
		d.bias[i] += delta
		floats.AddScaled(w[:n], delta, x)
	}
}

// Resize changes the node and weight counts. Existing parameters are kept,
// new ones are randomized and trailing ones are discarded.
func (d *Dense) Resize(nodes, weights int) {
	if nodes != d.numNodes {
		d.setNodes(nodes)
	}
	if weights != d.numWeights {
		d.setWeights(weights)
	}
}

func (d *Dense) setNodes(nodes int) {
	if nodes < d.numNodes {
		d.output = d.output[:nodes:nodes]
		d.bias = d.bias[:nodes:nodes]
		d.errs = d.errs[:nodes:nodes]
		d.weights = d.weights[:nodes:nodes]
	}
	for i := d.numNodes; i < nodes; i++ {
		d.output = append(d.output, 0)
		d.bias = append(d.bias, d.rng.Float64())
		d.errs = append(d.errs, 0)
		d.weights = append(d.weights, d.randomRow(d.numWeights))
	}
	d.numNodes = nodes
}

func (d *Dense) setWeights(weights int) {
	for i, w := range d.weights {
		if weights < len(w) {
			d.weights[i] = w[:weights:weights]
			continue
		}
		for j := len(w); j < weights; j++ {
			w = append(w, d.rng.Float64())
		}
		d.weights[i] = w
	}
	d.numWeights = weights
}

// Reset re-randomizes every parameter and clears outputs and errors.
func (d *Dense) Reset() {
	d.init()
}

// NodeCount returns the number of nodes.
func (d *Dense) NodeCount() int {
	return d.numNodes
}

// WeightCount returns the number of weights per node.
func (d *Dense) WeightCount() int {
	return d.numWeights
}

// Output returns the output buffer. It is overwritten by the next Feedforward.
func (d *Dense) Output() []float64 {
	return d.output
}

// Biases returns the bias buffer.
func (d *Dense) Biases() []float64 {
	return d.bias
}

// Errors returns the per-node error of the last backward pass.
func (d *Dense) Errors() []float64 {
	return d.errs
}

// Weights returns the weight rows, one per node.
func (d *Dense) Weights() [][]float64 {
	return d.weights
}

// SetWeight sets a single weight at (node, col).
func (d *Dense) SetWeight(node, col int, val float64) {
	d.weights[node][col] = val
}

// GetWeight gets a single weight at (node, col).
func (d *Dense) GetWeight(node, col int) float64 {
	return d.weights[node][col]
}

// SetBias sets a single bias.
func (d *Dense) SetBias(node int, val float64) {
	d.bias[node] = val
}

// GetBias gets a single bias.
func (d *Dense) GetBias(node int) float64 {
	return d.bias[node]
}

// Activation returns the activation function used by this layer.
func (d *Dense) Activation() activations.Activation {
	return d.act
}
