package net

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestPredictRangeCopies(t *testing.T) {
	n := New(2, 4, 1, 0, 0.1, WithSeed(3))
	preds := n.PredictRange(xorX)

	if len(preds) != 4 {
		t.Fatalf("len(preds) = %d, want 4", len(preds))
	}
	for i, p := range preds {
		want := n.Predict(xorX[i])[0]
		if p.Output[0] != want {
			t.Errorf("prediction %d = %v, want %v", i, p.Output[0], want)
		}
		if !equalSlices(p.Input, xorX[i]) {
			t.Errorf("prediction %d input = %v", i, p.Input)
		}
	}
	if &preds[0].Output[0] == &n.OutputLayer().Output()[0] {
		t.Error("PredictRange returned the live output buffer")
	}
}

func TestPredictMatrix(t *testing.T) {
	n := New(2, 4, 1, 0, 0.1, WithSeed(3))
	inputs := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})

	got, err := n.PredictMatrix(inputs)
	if err != nil {
		t.Fatalf("PredictMatrix: %v", err)
	}
	if r, c := got.Dims(); r != 4 || c != 1 {
		t.Fatalf("dims = (%d, %d), want (4, 1)", r, c)
	}
	for i, x := range xorX {
		if want := n.Predict(x)[0]; got.At(i, 0) != want {
			t.Errorf("row %d = %v, want %v", i, got.At(i, 0), want)
		}
	}

	_, err = n.PredictMatrix(mat.NewDense(2, 1, nil))
	if errors.Cause(err) != ErrUndersizedInput {
		t.Errorf("undersized matrix error = %v, want ErrUndersizedInput", err)
	}
}

func TestFprintPredictions(t *testing.T) {
	n := New(2, 4, 1, 0, 0.1, WithSeed(3))
	o := n.OutputLayer()
	for j := 0; j < o.WeightCount(); j++ {
		o.SetWeight(0, j, 0)
	}
	o.SetBias(0, 0.00001)

	var buf bytes.Buffer
	if err := n.FprintPredictions(&buf, [][]float64{{0, 1}, {1, 1}}); err != nil {
		t.Fatalf("FprintPredictions: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "Predicted output: 0\n"); got != 2 {
		t.Errorf("near-zero outputs printed %d times as 0, want 2:\n%s", got, out)
	}
	if !strings.Contains(out, "Input: 0 1\n") {
		t.Errorf("missing input line:\n%s", out)
	}
	if !strings.HasPrefix(out, separator) {
		t.Errorf("report should start with a separator:\n%s", out)
	}
}

func TestNetworkFprint(t *testing.T) {
	n := New(2, 4, 1, 0, 0.1, WithSeed(3))
	if err := n.AddHiddenLayer(3); err != nil {
		t.Fatalf("AddHiddenLayer: %v", err)
	}

	var buf bytes.Buffer
	if err := n.Fprint(&buf); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Hidden layer 1", "Hidden layer 2", "Output layer", "Weights per node: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
