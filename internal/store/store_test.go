package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beetlebugorg/vectopo/internal/topo"
)

const squareDoc = `
name: square
level: 2
lines:
  - id: 1
    type: boundary
    coords: [[0, 0], [10, 0], [10, 10], [0, 10]]
    left: 1
    right: -1
  - id: 2
    type: boundary
    coords: [[0, 10], [0, 0]]
    left: 1
    right: -1
  - id: 3
    type: centroid
    coords: [[5, 5]]
nodes:
  - id: 1
    coord: [0, 0]
    lines: [1, -2]
  - id: 2
    coord: [0, 10]
    lines: [2, -1]
areas:
  - id: 1
    boundaries: [1, 2]
    centroid: 3
layers:
  - layer: 1
    name: parcels
    table: parcel_attrs
    key: cat
    columns:
      - {name: id, type: INTEGER}
      - {name: name, type: TEXT, nullable: true}
      - {name: elev, type: DOUBLE PRECISION, nullable: true}
`

func TestDecode(t *testing.T) {
	m, err := Decode([]byte(squareDoc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if m.Name() != "square" {
		t.Errorf("Name() = %q, want %q", m.Name(), "square")
	}
	if m.SupportLevel() != topo.Level2 {
		t.Errorf("SupportLevel() = %v, want level 2", m.SupportLevel())
	}
	if got := m.CountLines(topo.TypeBoundary); got != 2 {
		t.Errorf("boundary count = %d, want 2", got)
	}
	if got := m.CountAreas(); got != 1 {
		t.Errorf("area count = %d, want 1", got)
	}

	line := m.Line(1)
	if line == nil || line.Left != 1 || line.Right != topo.OuterArea {
		t.Errorf("line 1 sides = %+v, want left 1 right exterior", line)
	}

	cols, err := m.ListColumns("parcels", "")
	if err != nil {
		t.Fatalf("ListColumns failed: %v", err)
	}
	if len(cols) != 3 || cols[2].Name != "elev" || cols[2].Type != topo.ColumnDouble {
		t.Errorf("columns = %+v", cols)
	}
}

func TestDecode3DCoordinates(t *testing.T) {
	doc := `
name: relief
level: 1
lines:
  - id: 1
    type: kernel
    coords: [[1, 2, 3], [4, 5, 6]]
`
	m, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !m.Is3D() {
		t.Error("3D document produced a 2D model")
	}
	if got := m.Line(1).Coords[1].Z; got != 6 {
		t.Errorf("Z = %v, want 6", got)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not yaml",
			doc:  "{{{",
		},
		{
			name: "missing name",
			doc: `
level: 2
`,
		},
		{
			name: "bad level",
			doc: `
name: x
level: 3
`,
		},
		{
			name: "unknown line type",
			doc: `
name: x
level: 1
lines:
  - id: 1
    type: polygon
    coords: [[0, 0]]
`,
		},
		{
			name: "mixed 2D and 3D coordinates",
			doc: `
name: x
level: 1
lines:
  - id: 1
    type: line
    coords: [[0, 0], [1, 1, 1]]
`,
		},
		{
			name: "line without coordinates",
			doc: `
name: x
level: 1
lines:
  - id: 1
    type: line
    coords: []
`,
		},
		{
			name: "layer without key column",
			doc: `
name: x
level: 2
layers:
  - layer: 1
    table: t
    columns:
      - {name: id, type: INTEGER}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Error("Decode accepted an invalid document")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.yaml")
	if err := os.WriteFile(path, []byte(squareDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Name() != "square" {
		t.Errorf("Name() = %q", m.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	var open *ErrMapOpen
	if !errors.As(err, &open) {
		t.Fatalf("error = %v, want ErrMapOpen", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ErrMapOpen does not wrap the underlying os error: %v", err)
	}
}
