package topo

// Extent is the axis-aligned bounding box of all geometry in a model.
// It is derived on demand, never cached: a model mutation can never
// leave a stale extent behind.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	// HasZ is set when at least one coordinate carried a Z value.
	// When false the Z fields are absent, not zero.
	HasZ bool

	// Empty is set for models with no coordinates. Min/Max must not
	// be used for comparisons on an empty extent.
	Empty bool
}

// Intersects returns true if the two extents overlap in the XY plane.
// An empty extent intersects nothing.
func (e Extent) Intersects(other Extent) bool {
	if e.Empty || other.Empty {
		return false
	}
	return !(other.MaxX < e.MinX ||
		other.MinX > e.MaxX ||
		other.MaxY < e.MinY ||
		other.MinY > e.MaxY)
}

// ComputeExtent derives the bounding extent from every coordinate of
// every line, type-agnostic, in one pass over the geometry.
func ComputeExtent(m *Model) Extent {
	ext := Extent{Empty: true}

	m.EachLine(func(l *Line) bool {
		for _, c := range l.Coords {
			if ext.Empty {
				ext = Extent{
					MinX: c.X, MaxX: c.X,
					MinY: c.Y, MaxY: c.Y,
				}
			}
			if c.X < ext.MinX {
				ext.MinX = c.X
			}
			if c.X > ext.MaxX {
				ext.MaxX = c.X
			}
			if c.Y < ext.MinY {
				ext.MinY = c.Y
			}
			if c.Y > ext.MaxY {
				ext.MaxY = c.Y
			}
			if l.HasZ {
				if !ext.HasZ {
					ext.HasZ = true
					ext.MinZ, ext.MaxZ = c.Z, c.Z
				}
				if c.Z < ext.MinZ {
					ext.MinZ = c.Z
				}
				if c.Z > ext.MaxZ {
					ext.MaxZ = c.Z
				}
			}
		}
		return true
	})

	return ext
}
