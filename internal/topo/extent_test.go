package topo

import (
	"testing"
)

func TestComputeExtent(t *testing.T) {
	tests := []struct {
		name      string
		lines     []*Line
		wantEmpty bool
		wantHasZ  bool
		want      Extent
	}{
		{
			name:      "empty model",
			lines:     nil,
			wantEmpty: true,
		},
		{
			name: "single point",
			lines: []*Line{
				{ID: 1, Type: TypePoint, Coords: []Coord{{X: 3, Y: -2}}},
			},
			want: Extent{MinX: 3, MaxX: 3, MinY: -2, MaxY: -2},
		},
		{
			name: "2D lines",
			lines: []*Line{
				{ID: 1, Type: TypeLine, Coords: []Coord{{X: -5, Y: 0}, {X: 2, Y: 8}}},
				{ID: 2, Type: TypeBoundary, Coords: []Coord{{X: 0, Y: -3}, {X: 9, Y: 1}}},
			},
			want: Extent{MinX: -5, MaxX: 9, MinY: -3, MaxY: 8},
		},
		{
			name: "mixed 2D and 3D",
			lines: []*Line{
				{ID: 1, Type: TypeLine, Coords: []Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}},
				{ID: 2, Type: TypeKernel, Coords: []Coord{{X: 2, Y: 2, Z: -7}, {X: 3, Y: 3, Z: 12}}, HasZ: true},
			},
			wantHasZ: true,
			want:     Extent{MinX: 0, MaxX: 3, MinY: 0, MaxY: 3, MinZ: -7, MaxZ: 12, HasZ: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel("test", Level1)
			for _, l := range tt.lines {
				m.AddLine(l)
			}

			got := ComputeExtent(m)
			if got.Empty != tt.wantEmpty {
				t.Fatalf("Empty = %v, want %v", got.Empty, tt.wantEmpty)
			}
			if tt.wantEmpty {
				return
			}
			if got.HasZ != tt.wantHasZ {
				t.Fatalf("HasZ = %v, want %v", got.HasZ, tt.wantHasZ)
			}
			if got != tt.want {
				t.Errorf("extent = %+v, want %+v", got, tt.want)
			}
			if got.MinX > got.MaxX || got.MinY > got.MaxY {
				t.Error("min exceeds max on an axis")
			}
			if got.HasZ && got.MinZ > got.MaxZ {
				t.Error("MinZ exceeds MaxZ")
			}
		})
	}
}

func TestExtentNotCached(t *testing.T) {
	m := NewModel("grow", Level1)
	m.AddLine(&Line{ID: 1, Type: TypePoint, Coords: []Coord{{X: 1, Y: 1}}})

	first := ComputeExtent(m)
	m.AddLine(&Line{ID: 2, Type: TypePoint, Coords: []Coord{{X: 50, Y: 50}}})
	second := ComputeExtent(m)

	if first.MaxX != 1 || second.MaxX != 50 {
		t.Errorf("extent cached across mutation: first MaxX=%v second MaxX=%v", first.MaxX, second.MaxX)
	}
}

func TestExtentIntersects(t *testing.T) {
	a := Extent{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	b := Extent{MinX: 5, MaxX: 15, MinY: 5, MaxY: 15}
	c := Extent{MinX: 20, MaxX: 30, MinY: 20, MaxY: 30}
	empty := Extent{Empty: true}

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping extents did not intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint extents intersected")
	}
	if a.Intersects(empty) || empty.Intersects(a) {
		t.Error("empty extent intersected")
	}
}
