package net

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedSample is returned for a line that does not hold exactly one
// input and one output sample.
var ErrMalformedSample = errors.New("trainingdata: malformed sample")

// Numbers are an optional minus sign followed by digits and decimal points;
// anything else separates them.
var numberPattern = regexp.MustCompile(`-?[0-9.]+`)

// ParseLine extracts NumInputs()+NumOutputs() numbers from line and appends
// them as one sample.
func (d *TrainingData) ParseLine(line string) error {
	tokens := numberPattern.FindAllString(line, -1)
	return d.appendValues(tokens)
}

func (d *TrainingData) appendValues(tokens []string) error {
	want := d.numInputs + d.numOutputs
	if len(tokens) != want {
		return errors.Wrapf(ErrMalformedSample, "got %d values, want %d", len(tokens), want)
	}
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return errors.Wrapf(ErrMalformedSample, "value %q", tok)
		}
		values[i] = v
	}
	d.Append(values[:d.numInputs], values[d.numInputs:])
	return nil
}

// Load appends every sample read from r, one per line. Blank lines are
// ignored; malformed lines are logged and skipped. It returns the number of
// samples added.
func (d *TrainingData) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := d.ParseLine(line); err != nil {
			d.log.Printf("skipping line %d: %v", lineNo, err)
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, errors.Wrap(err, "failed to read training data")
	}
	return added, nil
}

// LoadFile loads samples from the text file at path.
func (d *TrainingData) LoadFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return d.Load(file)
}

// LoadCSV loads samples from a CSV file where the first NumInputs() columns
// are inputs and the next NumOutputs() are outputs. hasHeader skips the first
// record. Malformed records are logged and skipped.
func (d *TrainingData) LoadCSV(path string, hasHeader bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	added := 0
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return added, errors.Wrapf(err, "failed to read csv at row %d", row)
		}
		if row == 0 && hasHeader {
			continue
		}
		if err := d.appendValues(record); err != nil {
			d.log.Printf("skipping row %d: %v", row, err)
			continue
		}
		added++
	}
	return added, nil
}
