package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/processing"
)

// PositionWriter is the interface for writing analysed positions to output.
// Different implementations handle different output formats (text, JSON).
type PositionWriter interface {
	// WriteAnalysis writes a single analysed position to the output.
	WriteAnalysis(a *processing.Analysis) error

	// WriteFailure records an input line that could not be analysed.
	WriteFailure(line int, input string, err error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewPositionWriter picks the writer for cfg's output format.
func NewPositionWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.Output.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes positions as plain text, separated by blank lines.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteAnalysis writes a position in text format.
func (tw *TextWriter) WriteAnalysis(a *processing.Analysis) error {
	tw.separate()
	writeAnalysis(tw.w, a, tw.cfg.Output)
	return nil
}

// WriteFailure writes the failure as a single line.
func (tw *TextWriter) WriteFailure(line int, input string, err error) error {
	tw.separate()
	_, werr := fmt.Fprintf(tw.w, "line %d: %q: %v\n", line, input, err)
	return werr
}

func (tw *TextWriter) separate() {
	if tw.written > 0 {
		fmt.Fprintln(tw.w)
	}
	tw.written++
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteAnalysis buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteAnalysis(a *processing.Analysis) error {
	return jw.add(AnalysisToJSON(a, jw.cfg.Output))
}

// WriteFailure buffers a failed input with its error message.
func (jw *JSONWriter) WriteFailure(line int, input string, err error) error {
	return jw.add(FailureToJSON(line, input, err))
}

func (jw *JSONWriter) add(jp *JSONPosition) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	err := OutputPositionsJSON(jw.positions, jw.w)

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
