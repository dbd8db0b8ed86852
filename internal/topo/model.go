package topo

import (
	"sort"
)

// Model is the in-memory representation of a vector map's topological
// graph. It exclusively owns every Node, Line, Area and Isle for the
// lifetime of the opened map; reporters receive it read-only and must
// not mutate it.
//
// A level 1 model holds only lines (raw geometry). A level 2 model
// additionally holds the node/area/isle graph.
type Model struct {
	name  string
	level SupportLevel

	lines map[int]*Line
	nodes map[int]*Node
	areas map[int]*Area
	isles map[int]*Isle

	links []DBLink

	// Sorted line IDs for stable iteration, rebuilt after mutation.
	lineOrder []int
	dirty     bool
}

// NewModel creates an empty model at the given support level.
func NewModel(name string, level SupportLevel) *Model {
	return &Model{
		name:  name,
		level: level,
		lines: make(map[int]*Line),
		nodes: make(map[int]*Node),
		areas: make(map[int]*Area),
		isles: make(map[int]*Isle),
	}
}

// Name returns the map name.
func (m *Model) Name() string {
	return m.name
}

// SupportLevel reflects whether the full topological graph was built.
func (m *Model) SupportLevel() SupportLevel {
	return m.level
}

// Is3D reports whether any line in the map carries Z values.
func (m *Model) Is3D() bool {
	for _, l := range m.lines {
		if l.HasZ {
			return true
		}
	}
	return false
}

// CountLines returns the number of lines of the given type.
func (m *Model) CountLines(t LineType) int {
	n := 0
	for _, l := range m.lines {
		if l.Type == t {
			n++
		}
	}
	return n
}

// CountAllLines returns the total number of lines of any type.
func (m *Model) CountAllLines() int {
	return len(m.lines)
}

// CountNodes returns the node count, 0 below level 2.
func (m *Model) CountNodes() int {
	if m.level < Level2 {
		return 0
	}
	return len(m.nodes)
}

// CountAreas returns the area count, 0 below level 2.
func (m *Model) CountAreas() int {
	if m.level < Level2 {
		return 0
	}
	return len(m.areas)
}

// CountIsles returns the isle count, 0 below level 2.
func (m *Model) CountIsles() int {
	if m.level < Level2 {
		return 0
	}
	return len(m.isles)
}

// LineIDs returns every line ID in ascending order. The slice is owned
// by the model; callers must not modify it.
func (m *Model) LineIDs() []int {
	if m.dirty || m.lineOrder == nil {
		m.lineOrder = make([]int, 0, len(m.lines))
		for id := range m.lines {
			m.lineOrder = append(m.lineOrder, id)
		}
		sort.Ints(m.lineOrder)
		m.dirty = false
	}
	return m.lineOrder
}

// EachLine calls fn for every line in ascending ID order. Iteration
// stops early if fn returns false. Repeated calls always yield the
// same order.
func (m *Model) EachLine(fn func(*Line) bool) {
	for _, id := range m.LineIDs() {
		if !fn(m.lines[id]) {
			return
		}
	}
}

// Line returns the line with the given ID, or nil.
func (m *Model) Line(id int) *Line {
	return m.lines[id]
}

// LineEndpoints returns the first and last coordinate of a line.
func (m *Model) LineEndpoints(id int) (Coord, Coord, error) {
	l, ok := m.lines[id]
	if !ok || len(l.Coords) == 0 {
		return Coord{}, Coord{}, &ErrLineNotFound{ID: id}
	}
	start, end := l.Endpoints()
	return start, end, nil
}

// Node returns the node with the given ID, or nil.
func (m *Model) Node(id int) *Node {
	return m.nodes[id]
}

// Area returns the area with the given ID, or nil.
func (m *Model) Area(id int) *Area {
	return m.areas[id]
}

// Isle returns the isle with the given ID, or nil.
func (m *Model) Isle(id int) *Isle {
	return m.isles[id]
}

// areaIDs returns every area ID in ascending order.
func (m *Model) areaIDs() []int {
	ids := make([]int, 0, len(m.areas))
	for id := range m.areas {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DBLinks returns the attribute-table links in declared order.
func (m *Model) DBLinks() []DBLink {
	return m.links
}

// AddLine inserts or replaces a line. Builder-side only: the storage
// engine populates the model before any reporter sees it.
func (m *Model) AddLine(l *Line) {
	m.lines[l.ID] = l
	m.dirty = true
}

// AddNode inserts or replaces a node.
func (m *Model) AddNode(n *Node) {
	m.nodes[n.ID] = n
}

// AddArea inserts or replaces an area.
func (m *Model) AddArea(a *Area) {
	m.areas[a.ID] = a
}

// AddIsle inserts or replaces an isle.
func (m *Model) AddIsle(i *Isle) {
	m.isles[i.ID] = i
}

// AddDBLink appends an attribute-table link. Declaration order is
// preserved and drives column report order.
func (m *Model) AddDBLink(link DBLink) {
	m.links = append(m.links, link)
}
