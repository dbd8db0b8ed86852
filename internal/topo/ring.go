package topo

// ring.go - outer/isle ring assembly from signed boundary references.
// Boundaries are stitched in stored traversal order; a negative
// reference walks the boundary's coordinates reversed.

// boundaryCoords returns a boundary's coordinates oriented for the
// given signed reference. Returns nil when the reference does not
// resolve to a boundary line.
func boundaryCoords(m *Model, ref int) []Coord {
	id := ref
	if id < 0 {
		id = -id
	}
	l := m.Line(id)
	if l == nil || l.Type != TypeBoundary {
		return nil
	}
	if ref >= 0 {
		return l.Coords
	}
	reversed := make([]Coord, len(l.Coords))
	for i, c := range l.Coords {
		reversed[len(l.Coords)-1-i] = c
	}
	return reversed
}

// assembleRing stitches the boundaries referenced by refs into a single
// coordinate ring. Shared endpoints between consecutive boundaries are
// deduplicated. The ring is returned as stored; closure is the
// caller's concern.
func assembleRing(m *Model, refs []int) []Coord {
	coords := make([]Coord, 0)

	for _, ref := range refs {
		segment := boundaryCoords(m, ref)
		if len(segment) == 0 {
			continue
		}

		// Skip the segment's first coordinate when it repeats the
		// ring's current tail.
		if len(coords) > 0 {
			last := coords[len(coords)-1]
			if last.X == segment[0].X && last.Y == segment[0].Y {
				segment = segment[1:]
			}
		}

		coords = append(coords, segment...)
	}

	return coords
}

// ringClosed reports whether a ring's first and last coordinate
// coincide. Rings shorter than 3 distinct stitched coordinates can
// never close.
func ringClosed(ring []Coord) bool {
	if len(ring) < 3 {
		return false
	}
	first, last := ring[0], ring[len(ring)-1]
	return first.X == last.X && first.Y == last.Y
}

// ringExtent computes the bounding extent of a ring.
func ringExtent(ring []Coord) Extent {
	if len(ring) == 0 {
		return Extent{Empty: true}
	}
	ext := Extent{
		MinX: ring[0].X, MaxX: ring[0].X,
		MinY: ring[0].Y, MaxY: ring[0].Y,
	}
	for _, c := range ring[1:] {
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
	}
	return ext
}
