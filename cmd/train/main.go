package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/relunet/internal/net"
)

func main() {
	file := flag.String("file", "", "training data file, one sample per line")
	csvFile := flag.Bool("csv", false, "read the training file as CSV")
	header := flag.Bool("header", false, "skip the first CSV record")
	inputs := flag.Int("inputs", 2, "number of inputs")
	hidden := flag.String("hidden", "4", "comma separated hidden layer widths")
	outputs := flag.Int("outputs", 1, "number of outputs")
	epochs := flag.Int("epochs", 1000, "number of training epochs")
	lr := flag.Float64("lr", 0.01, "learning rate")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	interval := flag.Int("interval", 0, "log the loss every n epochs")
	logFile := flag.String("log", "", "write per-epoch loss to this CSV file")
	dump := flag.Bool("dump", false, "print every layer after training")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		flag.Usage()
		os.Exit(2)
	}

	widths, err := parseWidths(*hidden)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -hidden: %v\n", err)
		os.Exit(2)
	}

	var opts []net.Option
	if *seed != 0 {
		opts = append(opts, net.WithSeed(*seed))
	}
	if *interval > 0 {
		opts = append(opts, net.WithCallbacks(net.Logger{Interval: *interval}))
	}
	if *logFile != "" {
		opts = append(opts, net.WithCallbacks(net.NewCSVLogger(*logFile, false)))
	}

	network := net.New(*inputs, widths[0], *outputs, *epochs, *lr, opts...)
	for _, w := range widths[1:] {
		if err := network.AddHiddenLayer(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding hidden layer: %v\n", err)
			os.Exit(1)
		}
	}

	data := network.TrainingData()
	var loaded int
	if *csvFile {
		loaded, err = data.LoadCSV(*file, *header)
	} else {
		loaded, err = data.LoadFile(*file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading training data: %v\n", err)
		os.Exit(1)
	}
	if loaded == 0 {
		fmt.Fprintln(os.Stderr, "No training samples found")
		os.Exit(1)
	}

	data.Fprint(os.Stdout)
	network.Train()
	fmt.Printf("Final loss: %.6f\n\n", network.MeanSquaredError())

	if *dump {
		network.Fprint(os.Stdout)
	}
	network.FprintPredictions(os.Stdout, data.Inputs())
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if w < 1 {
			return nil, fmt.Errorf("width %d must be positive", w)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
