package main

import (
	"fmt"
	"os"

	"github.com/FlavioCFOliveira/relunet/internal/net"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// 2 inputs -> 4 hidden -> 4 hidden -> 1 output, ReLU everywhere.
	in := 2
	hidden := 4
	out := 1
	epochs := 3000
	lr := 0.05

	network := net.New(in, hidden, out, epochs, lr,
		net.WithSeed(42),
		net.WithCallbacks(net.Logger{Interval: 500}),
	)
	if err := network.AddHiddenLayer(hidden); err != nil {
		fmt.Printf("Error adding hidden layer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Network architecture: %d-%d-%d-%d\n", in, hidden, hidden, out)
	fmt.Printf("Epochs: %d, learning rate: %g\n", epochs, lr)

	trainX := [][]float64{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	}
	trainY := [][]float64{
		{0},
		{1},
		{1},
		{0},
	}
	network.SetTrainingData(trainX, trainY)
	network.Train()

	fmt.Printf("\nFinal loss: %.6f\n\n", network.MeanSquaredError())
	if err := network.FprintPredictions(os.Stdout, trainX); err != nil {
		fmt.Printf("Error printing predictions: %v\n", err)
		os.Exit(1)
	}
}
