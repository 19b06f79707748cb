// Package output renders game reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter picks the writer matching the output configuration.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.ShowFEN)
}

// TextWriter writes reports as labelled lines.
type TextWriter struct {
	w       io.Writer
	showFEN bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showFEN bool) *TextWriter {
	return &TextWriter{w: w, showFEN: showFEN}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "state: %s\n", r.StateString)
	if tw.showFEN && r.FEN != "" {
		fmt.Fprintf(&sb, "fen: %s\n", r.FEN)
	}
	fmt.Fprintf(&sb, "to move: %s\n", r.SideToMove)
	if r.InCheck {
		sb.WriteString("check\n")
	}
	fmt.Fprintf(&sb, "status: %s\n", r.Status)
	if r.Occurrences > 1 {
		fmt.Fprintf(&sb, "occurrences: %d\n", r.Occurrences)
	}
	if r.Result != "" {
		fmt.Fprintf(&sb, "result: %s\n", r.Result)
	}
	if len(r.LegalMoves) > 0 {
		legal := slices.Clone(r.LegalMoves)
		slices.Sort(legal)
		fmt.Fprintf(&sb, "legal (%d): %s\n", len(legal), strings.Join(legal, " "))
	}
	if r.Perft != nil {
		for _, mn := range r.Perft.Divide {
			fmt.Fprintf(&sb, "%s: %d\n", mn.Move, mn.Nodes)
		}
		fmt.Fprintf(&sb, "perft %d: %d\n", r.Perft.Depth, r.Perft.Nodes)
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// WriteReport buffers a report for JSON output.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&ReportOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
