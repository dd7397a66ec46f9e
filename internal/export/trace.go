package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/gravbox/internal/physics"
)

var traceHeader = []string{"step", "body", "x", "y", "vx", "vy", "mass", "radius"}

// Trace writes one CSV row per body per observed step. Write errors are
// sticky and reported by Close.
type Trace struct {
	w      *csv.Writer
	closer io.Closer
	err    error
	rows   int
}

func NewTrace(w io.Writer) *Trace {
	t := &Trace{w: csv.NewWriter(w)}
	t.write(traceHeader)
	return t
}

// CreateTrace opens path for writing and returns a Trace that owns it.
func CreateTrace(path string) (*Trace, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	t := NewTrace(f)
	t.closer = f
	return t, nil
}

func (t *Trace) write(rec []string) {
	if t.err != nil {
		return
	}
	t.err = t.w.Write(rec)
}

func (t *Trace) OnStep(bodies []*physics.Body, step int) {
	for i, b := range bodies {
		t.write([]string{
			strconv.Itoa(step),
			strconv.Itoa(i),
			strconv.FormatFloat(b.Pos.X(), 'g', -1, 64),
			strconv.FormatFloat(b.Pos.Y(), 'g', -1, 64),
			strconv.FormatFloat(b.Vel.X(), 'g', -1, 64),
			strconv.FormatFloat(b.Vel.Y(), 'g', -1, 64),
			strconv.FormatFloat(b.Mass, 'g', -1, 64),
			strconv.FormatFloat(b.Radius, 'g', -1, 64),
		})
		t.rows++
	}
}

// Rows is the number of body rows written, excluding the header.
func (t *Trace) Rows() int { return t.rows }

// Close flushes buffered rows and closes the file opened by CreateTrace.
func (t *Trace) Close() error {
	t.w.Flush()
	if t.err == nil {
		t.err = t.w.Error()
	}
	if t.closer != nil {
		if err := t.closer.Close(); err != nil && t.err == nil {
			t.err = err
		}
		t.closer = nil
	}
	if t.err != nil {
		return fmt.Errorf("write trace: %w", t.err)
	}
	return nil
}
