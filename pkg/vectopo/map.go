package vectopo

import (
	"github.com/beetlebugorg/vectopo/internal/store"
	"github.com/beetlebugorg/vectopo/internal/topo"
)

// SupportLevel is the degree of topological structure built over the
// raw geometry.
type SupportLevel int

const (
	// Level1 exposes raw geometric primitives only.
	Level1 SupportLevel = SupportLevel(topo.Level1)
	// Level2 exposes the full node/area/isle graph.
	Level2 SupportLevel = SupportLevel(topo.Level2)
)

func (l SupportLevel) String() string {
	return topo.SupportLevel(l).String()
}

// Map is a handle to an opened vector map. The underlying model is
// owned by the handle and treated as immutable: every reporter holds
// only read-only views, and repeated reports over an unmodified map
// yield byte-identical output.
type Map struct {
	model *topo.Model
}

// Open loads a vector map document and returns a handle to its model.
func Open(path string) (*Map, error) {
	model, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return &Map{model: model}, nil
}

// Decode builds a map handle from an in-memory map document.
func Decode(data []byte) (*Map, error) {
	model, err := store.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Map{model: model}, nil
}

// Name returns the map name.
func (m *Map) Name() string {
	return m.model.Name()
}

// SupportLevel reflects whether the full topological graph was built.
func (m *Map) SupportLevel() SupportLevel {
	return SupportLevel(m.model.SupportLevel())
}

// Is3D reports whether any geometry in the map carries Z values.
func (m *Map) Is3D() bool {
	return m.model.Is3D()
}

// Extent is the axis-aligned bounding box of all geometry in a map.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	// HasZ is set when at least one coordinate carried a Z value;
	// the Z fields are absent otherwise, not zero.
	HasZ bool

	// Empty is set for maps without geometry. Min/Max of an empty
	// extent must not be used as a bounding box.
	Empty bool
}

// Intersects returns true if the two extents overlap in the XY plane.
// An empty extent intersects nothing.
func (e Extent) Intersects(other Extent) bool {
	return toInternalExtent(e).Intersects(toInternalExtent(other))
}

// Extent computes the map's bounding extent in one pass over the
// geometry. It is derived on demand, never cached.
func (m *Map) Extent() Extent {
	return fromInternalExtent(topo.ComputeExtent(m.model))
}

// LineCount is the number of lines of one type. Reports list every
// type of the closed set, zero counts included, in a fixed order.
type LineCount struct {
	Type  string
	Count int
}

// Finding is one detected topology consistency violation.
type Finding struct {
	Kind   string
	AreaID int
	IsleID int
	LineID int
	Detail string
}

// TopologySummary holds the counts and consistency findings of one
// topology reporting pass.
type TopologySummary struct {
	NodeCount  int
	AreaCount  int
	IsleCount  int
	TotalLines int
	LineCounts []LineCount

	// TopologyUnavailable is set for level 1 maps. Findings is nil in
	// that case: the consistency pass was omitted, not run empty.
	TopologyUnavailable bool
	Findings            []Finding
}

// Topology summarizes the map's topological structure. It never
// fails: a level 1 map yields a summary flagged TopologyUnavailable.
func (m *Map) Topology() TopologySummary {
	s := topo.Summarize(m.model)

	out := TopologySummary{
		NodeCount:           s.NodeCount,
		AreaCount:           s.AreaCount,
		IsleCount:           s.IsleCount,
		TotalLines:          s.TotalLines,
		TopologyUnavailable: s.TopologyUnavailable,
	}
	for _, t := range []topo.LineType{
		topo.TypePoint, topo.TypeLine, topo.TypeBoundary,
		topo.TypeCentroid, topo.TypeFace, topo.TypeKernel,
	} {
		out.LineCounts = append(out.LineCounts, LineCount{Type: t.String(), Count: s.LineCounts[t]})
	}
	if s.Findings != nil {
		out.Findings = make([]Finding, 0, len(s.Findings))
		for _, f := range s.Findings {
			out.Findings = append(out.Findings, Finding{
				Kind:   string(f.Kind),
				AreaID: f.AreaID,
				IsleID: f.IsleID,
				LineID: f.LineID,
				Detail: f.Detail,
			})
		}
	}
	return out
}

// ColumnDescriptor describes one attribute-table column.
type ColumnDescriptor struct {
	Name     string
	Type     string
	Nullable bool
}

// Columns lists the attribute columns of a layer in the schema's
// declared order. The layer selector is the layer number or name;
// empty selects the map's first attribute link. Fails with
// topo.ErrNoSuchLayer or topo.ErrNoSuchTable.
func (m *Map) Columns(layer, table string) ([]ColumnDescriptor, error) {
	cols, err := m.model.ListColumns(layer, table)
	if err != nil {
		return nil, err
	}
	out := make([]ColumnDescriptor, 0, len(cols))
	for _, c := range cols {
		out = append(out, ColumnDescriptor{
			Name:     c.Name,
			Type:     string(c.Type),
			Nullable: c.Nullable,
		})
	}
	return out, nil
}

func fromInternalExtent(ext topo.Extent) Extent {
	return Extent{
		MinX: ext.MinX, MaxX: ext.MaxX,
		MinY: ext.MinY, MaxY: ext.MaxY,
		MinZ: ext.MinZ, MaxZ: ext.MaxZ,
		HasZ:  ext.HasZ,
		Empty: ext.Empty,
	}
}

func toInternalExtent(ext Extent) topo.Extent {
	return topo.Extent{
		MinX: ext.MinX, MaxX: ext.MaxX,
		MinY: ext.MinY, MaxY: ext.MaxY,
		MinZ: ext.MinZ, MaxZ: ext.MaxZ,
		HasZ:  ext.HasZ,
		Empty: ext.Empty,
	}
}
