package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

var _ sim.Observer = (*Trace)(nil)

func TestTrace_WritesRowsPerBody(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTrace(&buf)

	a := physics.NewBody(mgl64.Vec2{1, 2}, 10, 5, 0)
	b := physics.NewBody(mgl64.Vec2{3, 4}, 20, 6, 0)
	b.Vel = mgl64.Vec2{0.5, -1}
	tr.OnStep([]*physics.Body{a, b}, 1)
	tr.OnStep([]*physics.Body{a, b}, 2)

	if err := tr.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if tr.Rows() != 4 {
		t.Errorf("rows = %d, want 4", tr.Rows())
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("records = %d, want 5", len(records))
	}
	if records[0][0] != "step" || records[0][7] != "radius" {
		t.Errorf("header = %v", records[0])
	}
	want := []string{"1", "1", "3", "4", "0.5", "-1", "20", "6"}
	for i, v := range want {
		if records[2][i] != v {
			t.Errorf("row[%d] = %q, want %q", i, records[2][i], v)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTrace_CloseReportsWriteError(t *testing.T) {
	tr := NewTrace(failWriter{})
	tr.OnStep([]*physics.Body{physics.NewBody(mgl64.Vec2{}, 1, 1, 0)}, 1)
	if err := tr.Close(); err == nil {
		t.Error("expected write error")
	}
}

func TestCreateTrace(t *testing.T) {
	if _, err := CreateTrace(filepath.Join(t.TempDir(), "missing", "trace.csv")); err == nil {
		t.Error("expected error for missing directory")
	}
	tr, err := CreateTrace(filepath.Join(t.TempDir(), "trace.csv"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
