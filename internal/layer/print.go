package layer

import (
	"fmt"
	"io"
	"strings"
)

const separator = "----------------------------------------------------------------------------"

// Fprint writes the layer's shape and parameters to w.
// Nothing is written for a layer without nodes.
func (d *Dense) Fprint(w io.Writer) error {
	if d.numNodes == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Number of nodes: %d\n", d.numNodes)
	fmt.Fprintf(&b, "Weights per node: %d\n", d.numWeights)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Outputs: %s\n", FormatValues(d.output, 0))
	fmt.Fprintf(&b, "Bias: %s\n", FormatValues(d.bias, 0))
	fmt.Fprintf(&b, "Error: %s\n", FormatValues(d.errs, 0))
	b.WriteString("\nWeights:\n")
	for i, row := range d.weights {
		fmt.Fprintf(&b, "\tNode %d: %s\n", i+1, FormatValues(row, 0))
	}
	b.WriteString(separator + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Fprint writes every layer of the stack to w.
func (s *Stack) Fprint(w io.Writer) error {
	for _, l := range s.layers {
		if err := l.Fprint(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatValues renders values separated by spaces using %g.
// Values with magnitude below threshold are written as 0.
func FormatValues(values []float64, threshold float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v > -threshold && v < threshold {
			parts[i] = "0"
			continue
		}
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, " ")
}
