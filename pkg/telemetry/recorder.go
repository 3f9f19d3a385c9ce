// Package telemetry writes per-tick simulation traces as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TickRow is one line of the trace
type TickRow struct {
	Tick               uint64  `csv:"tick"`
	X                  float64 `csv:"x"`
	Y                  float64 `csv:"y"`
	VelocityX          float64 `csv:"velocity_x"`
	VelocityY          float64 `csv:"velocity_y"`
	Rotation           float64 `csv:"rotation"`
	RotationalVelocity float64 `csv:"rotational_velocity"`
	Commands           int     `csv:"commands"`
	Intersects         bool    `csv:"intersects"`
}

// Recorder appends TickRows to a writer, emitting the header once.
// A nil *Recorder discards everything.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewRecorder creates a recorder writing to w
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{out: w}
}

// CreateRecorder creates path, and its directory, and records into it.
// An empty path disables recording and returns a nil recorder.
func CreateRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Recorder{out: f, closer: f}, nil
}

// Record writes one row
func (r *Recorder) Record(row TickRow) error {
	if r == nil {
		return nil
	}

	records := []TickRow{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	r.rows++
	return nil
}

// Rows returns the number of rows written so far
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Close closes the underlying file, if the recorder opened one
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadTrace parses a trace previously written by a Recorder
func ReadTrace(in io.Reader) ([]TickRow, error) {
	var rows []TickRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return rows, nil
}
