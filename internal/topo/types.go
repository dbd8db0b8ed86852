package topo

import "fmt"

// LineType identifies the kind of vector feature a Line represents.
// The set is closed: reporting code switches exhaustively over it.
type LineType uint8

const (
	TypePoint LineType = iota + 1
	TypeLine
	TypeBoundary
	TypeCentroid
	TypeFace   // 3D face primitive
	TypeKernel // 3D volume centroid
)

// lineTypes lists every LineType in report order.
var lineTypes = []LineType{TypePoint, TypeLine, TypeBoundary, TypeCentroid, TypeFace, TypeKernel}

func (t LineType) String() string {
	switch t {
	case TypePoint:
		return "point"
	case TypeLine:
		return "line"
	case TypeBoundary:
		return "boundary"
	case TypeCentroid:
		return "centroid"
	case TypeFace:
		return "face"
	case TypeKernel:
		return "kernel"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// ParseLineType converts a type name back to its LineType.
// Returns false for names outside the closed set.
func ParseLineType(s string) (LineType, bool) {
	for _, t := range lineTypes {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// SupportLevel is the degree of topological structure built over the
// raw geometry. Level 1 is flat geometry only; level 2 carries the full
// node/area/isle graph.
type SupportLevel int

const (
	Level1 SupportLevel = 1
	Level2 SupportLevel = 2
)

func (l SupportLevel) String() string {
	switch l {
	case Level1:
		return "level 1 (no topology)"
	case Level2:
		return "level 2 (full topology)"
	}
	return fmt.Sprintf("level %d", int(l))
}

// OuterArea is the sentinel area reference for the map exterior.
// A boundary on the edge of the map has OuterArea on its open side.
// A side reference of 0 means the side was never assigned and is a
// topology defect.
const OuterArea = -1

// Coord is a single vertex. Z is meaningful only when the owning Line
// has HasZ set.
type Coord struct {
	X, Y, Z float64
}

// Line is a generic vector feature: an ordered coordinate sequence with
// a type tag. Left/Right are populated for boundaries only.
type Line struct {
	ID     int
	Type   LineType
	Coords []Coord
	HasZ   bool

	// Area on each side when traversing the coordinates in stored
	// order. Valid values: a positive area ID, OuterArea, or 0 for
	// unassigned (boundaries only, 0 elsewhere).
	Left  int
	Right int
}

// Endpoints returns the first and last coordinate of the line.
// Both are the same coordinate for single-vertex lines.
func (l *Line) Endpoints() (Coord, Coord) {
	return l.Coords[0], l.Coords[len(l.Coords)-1]
}

// Node is a vertex of the topological graph: a point where one or more
// lines or boundaries meet, or an isolated endpoint.
type Node struct {
	ID    int
	Coord Coord

	// Lines incident to this node, signed: positive means the line
	// starts here, negative means it ends here.
	Lines []int
}

// Degree returns the number of line ends attached to the node.
func (n *Node) Degree() int {
	return len(n.Lines)
}

// Area is a closed region bounded by an oriented ring of boundaries.
type Area struct {
	ID int

	// Boundaries forming the outer ring, in traversal order and
	// signed: negative means the boundary is walked reversed.
	Boundaries []int

	// Isles contained in this area.
	Isles []int

	// Centroid is the line ID of the attached centroid, 0 if none.
	// At most one centroid per area.
	Centroid int
}

// Isle is a hole inside an Area, itself bounded by a ring of
// boundaries. Isles never nest directly inside isles.
type Isle struct {
	ID int

	// Boundaries forming the isle ring, signed like Area.Boundaries.
	Boundaries []int

	// Area that contains this isle.
	Area int
}
