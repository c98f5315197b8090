package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultFile is where the summary is persisted unless configured otherwise.
const DefaultFile = "SalesResults.txt"

// Result is the summary of one run.
type Result struct {
	Total   float64
	Errors  int
	Elapsed time.Duration
}

// Format renders the fixed summary block, every line newline-terminated.
func (r Result) Format() string {
	var buf bytes.Buffer
	buf.WriteString("=== Sales Results ===\n")
	buf.WriteString(fmt.Sprintf("Total Sales: $%.2f\n", r.Total))
	buf.WriteString(fmt.Sprintf("Errors/Warnings: %d\n", r.Errors))
	buf.WriteString(fmt.Sprintf("Execution Time: %.6f seconds\n", r.Elapsed.Seconds()))
	return buf.String()
}

// Write prints the summary to w and persists the same text to path,
// replacing whatever the file held before.
func Write(w io.Writer, path string, r Result) error {
	text := r.Format()

	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("failed to print results: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}
