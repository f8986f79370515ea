package net

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/relunet/internal/layer"
)

const separator = "----------------------------------------------------------------------------"

// ZeroThreshold is the magnitude below which reports print a value as 0.
const ZeroThreshold = 1e-4

// ErrUndersizedInput is returned when an input is narrower than the network.
var ErrUndersizedInput = errors.New("net: input narrower than network input width")

// Prediction pairs an input with the output predicted for it.
type Prediction struct {
	Input  []float64
	Output []float64
}

// PredictRange predicts every input and returns copies of the outputs.
// Undersized inputs repeat the previous prediction, like Feedforward.
func (n *Network) PredictRange(inputs [][]float64) []Prediction {
	preds := make([]Prediction, len(inputs))
	for i, in := range inputs {
		out := n.Predict(in)
		preds[i] = Prediction{
			Input:  in,
			Output: append([]float64(nil), out...),
		}
	}
	return preds
}

// PredictMatrix predicts every row of inputs and returns one output row per
// input row.
func (n *Network) PredictMatrix(inputs mat.Matrix) (*mat.Dense, error) {
	r, c := inputs.Dims()
	if c < n.numInputs {
		return nil, errors.Wrapf(ErrUndersizedInput, "%d columns, want %d", c, n.numInputs)
	}
	result := mat.NewDense(r, n.numOutputs, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, inputs)
		result.SetRow(i, n.Predict(row))
	}
	return result, nil
}

// FprintPredictions writes each input and its predicted output to w.
func (n *Network) FprintPredictions(w io.Writer, inputs [][]float64) error {
	var b strings.Builder
	b.WriteString(separator + "\n")
	for _, p := range n.PredictRange(inputs) {
		fmt.Fprintf(&b, "Input: %s\n", layer.FormatValues(p.Input, ZeroThreshold))
		fmt.Fprintf(&b, "Predicted output: %s\n", layer.FormatValues(p.Output, ZeroThreshold))
	}
	b.WriteString(separator + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Fprint writes the shape and parameters of every layer to w.
func (n *Network) Fprint(w io.Writer) error {
	for i, l := range n.hidden.Layers() {
		if _, err := fmt.Fprintf(w, "Hidden layer %d\n", i+1); err != nil {
			return err
		}
		if err := l.Fprint(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "Output layer\n"); err != nil {
		return err
	}
	return n.output.Fprint(w)
}
