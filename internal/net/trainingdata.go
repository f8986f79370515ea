package net

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/relunet/internal/layer"
)

// TrainingData stores index-aligned input and output samples together with
// the order in which training visits them.
type TrainingData struct {
	x     [][]float64
	y     [][]float64
	order []int

	numInputs  int
	numOutputs int
	rng        layer.Rand
	log        *log.Logger
}

// NewTrainingData creates an empty store for samples of the given widths.
func NewTrainingData(numInputs, numOutputs int, rng layer.Rand) *TrainingData {
	return &TrainingData{
		numInputs:  numInputs,
		numOutputs: numOutputs,
		rng:        rng,
		log:        log.New(os.Stderr, "trainingdata: ", 0),
	}
}

// SetLogger replaces the logger that receives load diagnostics.
func (d *TrainingData) SetLogger(l *log.Logger) {
	d.log = l
}

// Assign replaces all samples with copies of x and y and resets the order to
// the identity. x and y must have the same length.
func (d *TrainingData) Assign(x, y [][]float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("trainingdata: %d inputs but %d outputs", len(x), len(y)))
	}
	d.Clear()
	d.x = make([][]float64, len(x))
	d.y = make([][]float64, len(y))
	for i := range x {
		d.x[i] = append([]float64(nil), x[i]...)
		d.y[i] = append([]float64(nil), y[i]...)
	}
	d.resetOrder()
}

// AssignMatrix is Assign for samples stored one per row.
func (d *TrainingData) AssignMatrix(x, y mat.Matrix) {
	d.Assign(matrixRows(x), matrixRows(y))
}

func matrixRows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}

// Append adds one sample and extends the order by its index.
func (d *TrainingData) Append(x, y []float64) {
	d.x = append(d.x, append([]float64(nil), x...))
	d.y = append(d.y, append([]float64(nil), y...))
	d.order = append(d.order, len(d.x)-1)
}

func (d *TrainingData) resetOrder() {
	d.order = make([]int, len(d.x))
	for i := range d.order {
		d.order[i] = i
	}
}

// Shuffle permutes the visiting order with one forward pass of random
// transpositions: every position i is swapped with a uniformly drawn
// position r in [0, sets), r == i included. The resulting permutations are
// not uniformly distributed; trained models depend on this exact sequence.
func (d *TrainingData) Shuffle() {
	sets := len(d.order)
	for i := 0; i < sets; i++ {
		r := d.rng.Intn(sets)
		d.order[i], d.order[r] = d.order[r], d.order[i]
	}
}

// Clear removes every sample.
func (d *TrainingData) Clear() {
	d.x = nil
	d.y = nil
	d.order = nil
}

// Sets returns the number of samples.
func (d *TrainingData) Sets() int {
	return len(d.x)
}

// Sample returns the input and output of sample i.
func (d *TrainingData) Sample(i int) (x, y []float64) {
	return d.x[i], d.y[i]
}

// Order returns the current visiting order.
func (d *TrainingData) Order() []int {
	return d.order
}

// Inputs returns all input samples.
func (d *TrainingData) Inputs() [][]float64 {
	return d.x
}

// Outputs returns all output samples.
func (d *TrainingData) Outputs() [][]float64 {
	return d.y
}

// NumInputs returns the input width of a sample.
func (d *TrainingData) NumInputs() int {
	return d.numInputs
}

// NumOutputs returns the output width of a sample.
func (d *TrainingData) NumOutputs() int {
	return d.numOutputs
}

// Fprint writes every sample to w.
func (d *TrainingData) Fprint(w io.Writer) error {
	var b strings.Builder
	if len(d.x) == 0 {
		b.WriteString("No training data!\n\n")
	} else {
		fmt.Fprintf(&b, "Number of training sets: %d\n", len(d.x))
		fmt.Fprintf(&b, "Inputs: %d\n", d.numInputs)
		fmt.Fprintf(&b, "Outputs: %d\n", d.numOutputs)
		b.WriteString(separator + "\n")
		for i := range d.x {
			fmt.Fprintf(&b, "Set %d\n", i+1)
			fmt.Fprintf(&b, "Inputs: %s\n", layer.FormatValues(d.x[i], 0))
			fmt.Fprintf(&b, "Outputs: %s\n", layer.FormatValues(d.y[i], 0))
			if i < len(d.x)-1 {
				b.WriteString("\n")
			}
		}
	}
	b.WriteString(separator + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
