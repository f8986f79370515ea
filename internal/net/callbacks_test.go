package net

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FlavioCFOliveira/relunet/internal/opt"
)

type recorder struct {
	BaseCallback
	begins, ends int
	epochs       []int
	losses       []float64
}

func (r *recorder) OnTrainBegin(n *Network) { r.begins++ }
func (r *recorder) OnTrainEnd(n *Network) { r.ends++ }
func (r *recorder) OnEpochEnd(epoch int, loss float64, n *Network) {
	r.epochs = append(r.epochs, epoch)
	r.losses = append(r.losses, loss)
}

func TestCallbacksObserveEveryEpoch(t *testing.T) {
	rec := &recorder{}
	n := New(2, 4, 1, 6, 0.05, WithSeed(1), WithCallbacks(rec))
	n.SetTrainingData(xorX, xorY)
	n.Train()

	if rec.begins != 1 || rec.ends != 1 {
		t.Errorf("begin/end = %d/%d, want 1/1", rec.begins, rec.ends)
	}
	if len(rec.epochs) != 6 {
		t.Fatalf("observed %d epochs, want 6", len(rec.epochs))
	}
	for i, e := range rec.epochs {
		if e != i {
			t.Errorf("epoch %d reported as %d", i, e)
		}
		if rec.losses[i] < 0 || math.IsNaN(rec.losses[i]) {
			t.Errorf("epoch %d loss = %v", i, rec.losses[i])
		}
	}
}

func TestEarlyStopping(t *testing.T) {
	rec := &recorder{}
	stop := NewEarlyStopping(1, 1e9)
	n := New(2, 4, 1, 50, 0.05, WithSeed(1), WithCallbacks(rec, stop))
	n.SetTrainingData(xorX, xorY)
	n.Train()

	if !stop.ShouldStop() {
		t.Fatal("EarlyStopping did not trigger")
	}
	if len(rec.epochs) != 2 {
		t.Errorf("ran %d epochs, want 2", len(rec.epochs))
	}
}

func TestSchedulerCallback(t *testing.T) {
	n := New(2, 4, 1, 3, 0.8, WithSeed(1))
	n.AddCallback(NewSchedulerCallback(opt.NewExponentialLR(n.Optimizer(), 0.5)))
	n.SetTrainingData(xorX, xorY)
	n.Train()

	if got := n.LearningRate(); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("learning rate = %v, want 0.1", got)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	n := New(2, 4, 1, 4, 0.05, WithSeed(1), WithCallbacks(Logger{Interval: 2, Out: &buf}))
	n.SetTrainingData(xorX, xorY)
	n.Train()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "Epoch 0: loss = ") || !strings.HasPrefix(lines[1], "Epoch 2: loss = ") {
		t.Errorf("unexpected log:\n%s", buf.String())
	}
}

func TestCSVLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "train.csv")

	logger := NewCSVLogger(filename, false)
	n := New(2, 4, 1, 0, 0.25, WithSeed(1))

	logger.OnTrainBegin(n)
	logger.OnEpochEnd(0, 0.5, n)
	logger.OnEpochEnd(1, 0.4, n)
	logger.OnTrainEnd(n)

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("failed to open logger file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}

	if len(records) != 3 { // Header + 2 epochs
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1][0] != "0" || records[1][1] != "0.500000" || records[1][2] != "0.25" {
		t.Errorf("unexpected record at epoch 0: %v", records[1])
	}
}
