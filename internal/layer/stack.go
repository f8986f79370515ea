package layer

import "github.com/pkg/errors"

// Stack is the ordered sequence of hidden layers, earliest closest to the
// network input. Every layer's weight count equals the node count of the
// layer before it.
type Stack struct {
	layers []*Dense
	rng    Rand
}

// NewStack creates a stack seeded with a single layer of the given shape.
func NewStack(nodes, weights int, rng Rand) *Stack {
	return &Stack{
		layers: []*Dense{NewDense(nodes, weights, rng)},
		rng:    rng,
	}
}

// Feedforward runs every layer in order. The first layer reads input, each
// later layer reads its predecessor's output.
func (s *Stack) Feedforward(input []float64) {
	curr := input
	for _, l := range s.layers {
		l.Feedforward(curr)
		curr = l.output
	}
}

// Backpropagate computes errors from the last layer back to the first.
// outputLayer acts as the next layer of the last hidden layer.
func (s *Stack) Backpropagate(outputLayer *Dense) {
	next := outputLayer
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].BackpropagateFrom(next)
		next = s.layers[i]
	}
}

// Optimize updates every layer from the last to the first. Each layer is
// updated against the output of the layer before it; the first layer uses
// input. Must run before the next Feedforward overwrites those outputs.
func (s *Stack) Optimize(input []float64, learningRate float64) {
	if len(s.layers) == 0 {
		return
	}
	for i := len(s.layers) - 1; i > 0; i-- {
		s.layers[i].Optimize(s.layers[i-1].output, learningRate)
	}
	s.layers[0].Optimize(input, learningRate)
}

// AppendLayer adds a layer whose weight count is the current last layer's
// node count.
func (s *Stack) AppendLayer(nodes int) error {
	return s.AppendLayers(1, nodes)
}

// AppendLayers adds count layers of the given width. The first new layer is
// wired to the current last layer, the rest to each other.
func (s *Stack) AppendLayers(count, nodes int) error {
	if count < 0 || nodes < 1 {
		return errors.Wrapf(ErrInvalidSize, "append %d layers of %d nodes", count, nodes)
	}
	last, err := s.Last()
	if err != nil {
		return errors.Wrap(err, "append layer")
	}
	weights := last.numNodes
	for i := 0; i < count; i++ {
		s.layers = append(s.layers, NewDense(nodes, weights, s.rng))
		weights = nodes
	}
	return nil
}

// Pop removes the last layer. The only remaining layer cannot be removed.
func (s *Stack) Pop() error {
	if len(s.layers) <= 1 {
		return errors.Wrap(ErrEmptyStack, "pop would leave no layers")
	}
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
	return nil
}

// Last returns the most recently appended layer.
func (s *Stack) Last() (*Dense, error) {
	if len(s.layers) == 0 {
		return nil, ErrEmptyStack
	}
	return s.layers[len(s.layers)-1], nil
}

// First returns the layer closest to the network input.
func (s *Stack) First() (*Dense, error) {
	if len(s.layers) == 0 {
		return nil, ErrEmptyStack
	}
	return s.layers[0], nil
}

// Output returns the last layer's output, or nil for an empty stack.
func (s *Stack) Output() []float64 {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1].output
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index i.
func (s *Stack) Layer(i int) *Dense {
	return s.layers[i]
}

// Layers returns the stack's layers slice.
func (s *Stack) Layers() []*Dense {
	return s.layers
}

// Validate reports ErrWidthMismatch when a layer's weight count differs from
// its predecessor's node count. Training never calls it.
func (s *Stack) Validate() error {
	for i := 1; i < len(s.layers); i++ {
		if s.layers[i].numWeights != s.layers[i-1].numNodes {
			return errors.Wrapf(ErrWidthMismatch, "layer %d has %d weights, layer %d has %d nodes",
				i, s.layers[i].numWeights, i-1, s.layers[i-1].numNodes)
		}
	}
	return nil
}
