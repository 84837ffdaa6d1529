package trace

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
)

// VectorType labels an exported vector: 0 for the raw positive-reward step
// output, 1 for the zero-reward inner solver's converged result (the v_i
// the driver ultimately keeps).
type VectorType int

const (
	// TypePositive marks a freshly computed x⁺_i, before the inner solver runs.
	TypePositive VectorType = 0
	// TypeConverged marks the inner solver's converged v_i.
	TypeConverged VectorType = 1
)

var shellTemplate = template.Must(template.New("trace").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>quantile iteration trace</title></head>
<body>
<script>
var vectors = [];
function addVector(values, type) {
  vectors.push({values: values, type: type});
}
`))

// Exporter appends a sequence of addVector(...) calls to an append-only
// writer, opening with the HTML shell on the first write and closing with
// the trailing init(); call on Close.
type Exporter struct {
	w             io.Writer
	headerWritten bool
}

// NewExporter wraps w. The header is written lazily on the first AddVector
// call so an Exporter created but never fed a vector leaves w untouched.
func NewExporter(w io.Writer) *Exporter {
	return &Exporter{w: w}
}

// AddVector serialises values as a JSON-like numeric array and appends
// addVector(values, type); to the trace. Infinities are rendered as the bare
// identifiers Infinity / -Infinity, finite values to 17 significant digits.
func (e *Exporter) AddVector(values []float64, typ VectorType) error {
	if !e.headerWritten {
		if err := shellTemplate.Execute(e.w, nil); err != nil {
			return fmt.Errorf("trace: writing header: %w", err)
		}
		e.headerWritten = true
	}

	if _, err := io.WriteString(e.w, "addVector(["); err != nil {
		return fmt.Errorf("trace: writing vector: %w", err)
	}
	for i, v := range values {
		if i > 0 {
			if _, err := io.WriteString(e.w, ","); err != nil {
				return fmt.Errorf("trace: writing vector: %w", err)
			}
		}
		if _, err := io.WriteString(e.w, formatValue(v)); err != nil {
			return fmt.Errorf("trace: writing vector: %w", err)
		}
	}
	if _, err := fmt.Fprintf(e.w, "], %d);\n", typ); err != nil {
		return fmt.Errorf("trace: writing vector: %w", err)
	}

	return nil
}

// formatValue renders one value as bare Infinity/-Infinity identifiers for
// infinite values, or at least 17 significant digits otherwise.
func formatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}

	return strconv.FormatFloat(v, 'g', 17, 64)
}

// Close appends the trailing init(); call and closes the document. A no-op
// if AddVector was never called, matching "no semantic effect when unused".
func (e *Exporter) Close() error {
	if !e.headerWritten {
		return nil
	}
	_, err := io.WriteString(e.w, "init();\n</script>\n</body>\n</html>\n")
	if err != nil {
		return fmt.Errorf("trace: writing footer: %w", err)
	}

	return nil
}
