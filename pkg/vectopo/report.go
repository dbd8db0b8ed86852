package vectopo

import (
	"bytes"
	"fmt"
	"io"
)

// ReportOptions selects which report sections to emit.
//
// The three section flags are independent; when none is set the report
// defaults to all sections plus a map header. Sections always render
// in a fixed order (region, topology, columns) regardless of how they
// were selected.
type ReportOptions struct {
	Region   bool
	Topology bool
	Columns  bool

	// Layer selects the attribute layer for the columns section, by
	// number or name. Empty selects the map's first attribute link.
	Layer string

	// Table optionally names the expected attribute table; a mismatch
	// with the resolved layer's table fails the report.
	Table string

	// Precision is the decimal precision for coordinate output.
	// Zero means DefaultPrecision.
	Precision int
}

func (o ReportOptions) precision() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// Report renders the selected sections of the map report to w.
//
// The whole report is rendered to memory first and written in one
// piece: a failing section (an unresolvable columns layer, say)
// produces no partial output. Reports over an unmodified map are
// idempotent down to the byte.
func (m *Map) Report(w io.Writer, opts ReportOptions) error {
	region, topology, columns := opts.Region, opts.Topology, opts.Columns
	all := !region && !topology && !columns
	if all {
		region, topology, columns = true, true, true
	}

	var buf bytes.Buffer

	if all {
		m.renderHeader(&buf)
	}
	if region {
		m.renderRegion(&buf, opts.precision())
	}
	if topology {
		m.renderTopology(&buf)
	}
	if columns {
		err := m.renderColumns(&buf, opts.Layer, opts.Table)
		if err != nil {
			// Under the all-sections default a map without attribute
			// data simply has no columns section; an explicit request
			// fails.
			if !(all && opts.Layer == "" && opts.Table == "" && isNoLayer(err)) {
				return err
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// LevelOneInfo renders the reduced report available without the
// topological graph: the region and columns sections only.
func (m *Map) LevelOneInfo(w io.Writer, opts ReportOptions) error {
	var buf bytes.Buffer

	m.renderHeader(&buf)
	m.renderRegion(&buf, opts.precision())
	if err := m.renderColumns(&buf, opts.Layer, opts.Table); err != nil {
		if !(opts.Layer == "" && opts.Table == "" && isNoLayer(err)) {
			return err
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (m *Map) renderHeader(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "map: %s\n", m.Name())
	fmt.Fprintf(buf, "support: %s\n", m.SupportLevel())
	dim := "2D"
	if m.Is3D() {
		dim = "3D"
	}
	fmt.Fprintf(buf, "dimension: %s\n", dim)
}

func (m *Map) renderRegion(buf *bytes.Buffer, precision int) {
	ext := m.Extent()
	if ext.Empty {
		buf.WriteString("region: empty (map has no geometry)\n")
		return
	}

	buf.WriteString("region:\n")
	fmt.Fprintf(buf, "  north: %s\n", FormatDouble(ext.MaxY, precision))
	fmt.Fprintf(buf, "  south: %s\n", FormatDouble(ext.MinY, precision))
	fmt.Fprintf(buf, "  east: %s\n", FormatDouble(ext.MaxX, precision))
	fmt.Fprintf(buf, "  west: %s\n", FormatDouble(ext.MinX, precision))
	if ext.HasZ {
		fmt.Fprintf(buf, "  top: %s\n", FormatDouble(ext.MaxZ, precision))
		fmt.Fprintf(buf, "  bottom: %s\n", FormatDouble(ext.MinZ, precision))
	}
}

// lineCountLabels maps the closed line type set to its report labels,
// in report order.
var lineCountLabels = map[string]string{
	"point":    "points",
	"line":     "lines",
	"boundary": "boundaries",
	"centroid": "centroids",
	"face":     "faces",
	"kernel":   "kernels",
}

func (m *Map) renderTopology(buf *bytes.Buffer) {
	s := m.Topology()

	if s.TopologyUnavailable {
		buf.WriteString("topology: not built (support level 1)\n")
		return
	}

	buf.WriteString("topology:\n")
	for _, lc := range s.LineCounts {
		fmt.Fprintf(buf, "  %s: %d\n", lineCountLabels[lc.Type], lc.Count)
	}
	fmt.Fprintf(buf, "  total lines: %d\n", s.TotalLines)
	fmt.Fprintf(buf, "  nodes: %d\n", s.NodeCount)
	fmt.Fprintf(buf, "  areas: %d\n", s.AreaCount)
	fmt.Fprintf(buf, "  isles: %d\n", s.IsleCount)

	if len(s.Findings) == 0 {
		buf.WriteString("  consistency: ok\n")
		return
	}
	buf.WriteString("  consistency:\n")
	for _, f := range s.Findings {
		switch f.Kind {
		case "open-ring":
			fmt.Fprintf(buf, "    - %s: area %d: %s\n", f.Kind, f.AreaID, f.Detail)
		case "isle-outside-area":
			fmt.Fprintf(buf, "    - %s: isle %d in area %d: %s\n", f.Kind, f.IsleID, f.AreaID, f.Detail)
		case "dangling-boundary":
			fmt.Fprintf(buf, "    - %s: line %d: %s\n", f.Kind, f.LineID, f.Detail)
		default:
			fmt.Fprintf(buf, "    - %s: %s\n", f.Kind, f.Detail)
		}
	}
}

func (m *Map) renderColumns(buf *bytes.Buffer, layer, table string) error {
	link, err := m.model.Link(layer)
	if err != nil {
		return err
	}
	cols, err := m.model.ListColumns(layer, table)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("layer %d", link.Layer)
	if link.Name != "" {
		name += "/" + link.Name
	}
	fmt.Fprintf(buf, "columns (%s, table %s, key %s):\n", name, link.Table, link.Key)
	for _, c := range cols {
		if c.Nullable {
			fmt.Fprintf(buf, "  %s: %s\n", c.Name, c.Type)
		} else {
			fmt.Fprintf(buf, "  %s: %s NOT NULL\n", c.Name, c.Type)
		}
	}
	return nil
}
