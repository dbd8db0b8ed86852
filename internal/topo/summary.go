package topo

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FindingKind classifies a topology consistency violation.
type FindingKind string

const (
	// FindingOpenRing - an area's outer ring does not close.
	FindingOpenRing FindingKind = "open-ring"

	// FindingIsleOutsideArea - an isle's ring is not contained in its
	// owning area's outer ring.
	FindingIsleOutsideArea FindingKind = "isle-outside-area"

	// FindingDanglingBoundary - a boundary's left or right side points
	// at neither a valid area nor the map exterior.
	FindingDanglingBoundary FindingKind = "dangling-boundary"
)

// Finding is one detected consistency violation. Findings are data:
// they are collected and reported, never repaired.
type Finding struct {
	Kind   FindingKind
	AreaID int // set for open-ring and isle-outside-area
	IsleID int // set for isle-outside-area
	LineID int // set for dangling-boundary
	Detail string
}

// Summary is the result of one topology reporting pass over a model.
type Summary struct {
	NodeCount int
	AreaCount int
	IsleCount int

	// LineCounts maps each line type to its count. Every type of the
	// closed set is present, zero included.
	LineCounts map[LineType]int
	TotalLines int

	// TopologyUnavailable is set for level 1 models. Findings is nil
	// in that case: the consistency pass is omitted, not run empty.
	TopologyUnavailable bool
	Findings            []Finding
}

// Summarize walks the model once and produces counts plus the
// consistency section. It never fails: a level 1 model yields a
// summary flagged TopologyUnavailable with the consistency section
// omitted.
func Summarize(m *Model) Summary {
	s := Summary{
		LineCounts: make(map[LineType]int, len(lineTypes)),
		TotalLines: m.CountAllLines(),
	}
	for _, t := range lineTypes {
		s.LineCounts[t] = 0
	}
	m.EachLine(func(l *Line) bool {
		s.LineCounts[l.Type]++
		return true
	})

	if m.SupportLevel() < Level2 {
		s.TopologyUnavailable = true
		return s
	}

	s.NodeCount = m.CountNodes()
	s.AreaCount = m.CountAreas()
	s.IsleCount = m.CountIsles()
	s.Findings = checkConsistency(m)
	return s
}

// checkConsistency runs the three structural checks over a level 2
// model and returns the violations in deterministic order: ring
// closure per area, isle containment per area, then boundary side
// references per line.
func checkConsistency(m *Model) []Finding {
	findings := make([]Finding, 0)

	// Outer rings are assembled once and reused for the containment
	// checks and the area index.
	rings := make(map[int][]Coord, m.CountAreas())
	extents := make(map[int]Extent, m.CountAreas())
	for _, id := range m.areaIDs() {
		ring := assembleRing(m, m.Area(id).Boundaries)
		rings[id] = ring
		extents[id] = ringExtent(ring)
	}
	index := newAreaIndex(extents)

	for _, id := range m.areaIDs() {
		if !ringClosed(rings[id]) {
			findings = append(findings, Finding{
				Kind:   FindingOpenRing,
				AreaID: id,
				Detail: "outer ring does not close",
			})
		}
	}

	for _, id := range m.areaIDs() {
		area := m.Area(id)
		outer := toOrbRing(rings[id])
		for _, isleID := range area.Isles {
			isle := m.Isle(isleID)
			if isle == nil {
				continue
			}
			ring := assembleRing(m, isle.Boundaries)
			if isleInside(ring, outer) {
				continue
			}
			findings = append(findings, Finding{
				Kind:   FindingIsleOutsideArea,
				AreaID: id,
				IsleID: isleID,
				Detail: isleDetail(m, index, rings, ring, id),
			})
		}
	}

	m.EachLine(func(l *Line) bool {
		if l.Type != TypeBoundary {
			return true
		}
		for _, side := range [2]int{l.Left, l.Right} {
			if sideValid(m, side) {
				continue
			}
			findings = append(findings, Finding{
				Kind:   FindingDanglingBoundary,
				LineID: l.ID,
				Detail: fmt.Sprintf("side reference %d is neither an area nor the map exterior", side),
			})
		}
		return true
	})

	return findings
}

// sideValid reports whether a boundary side reference resolves to a
// known area or the exterior sentinel.
func sideValid(m *Model, ref int) bool {
	if ref == OuterArea {
		return true
	}
	return ref > 0 && m.Area(ref) != nil
}

// isleInside reports whether every vertex of the isle ring lies inside
// the outer ring. Degenerate rings on either side fail the check.
func isleInside(isleRing []Coord, outer orb.Ring) bool {
	if len(isleRing) == 0 || len(outer) < 4 {
		return false
	}
	for _, c := range isleRing {
		if !planar.RingContains(outer, orb.Point{c.X, c.Y}) {
			return false
		}
	}
	return true
}

// isleDetail names the areas that actually contain the misplaced isle,
// found via the area extent index.
func isleDetail(m *Model, index *areaIndex, rings map[int][]Coord, isleRing []Coord, owner int) string {
	candidates := make([]int, 0)
	for _, id := range index.intersecting(ringExtent(isleRing)) {
		if id == owner {
			continue
		}
		if isleInside(isleRing, toOrbRing(rings[id])) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "isle ring lies outside its owning area"
	}
	sort.Ints(candidates)
	return fmt.Sprintf("isle ring lies outside its owning area, contained by area(s) %v", candidates)
}

// toOrbRing converts a closed coordinate ring to an orb.Ring for
// point-in-ring tests.
func toOrbRing(ring []Coord) orb.Ring {
	out := make(orb.Ring, 0, len(ring))
	for _, c := range ring {
		out = append(out, orb.Point{c.X, c.Y})
	}
	return out
}
