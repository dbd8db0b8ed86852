// Package vectopo provides read-only inspection of planar vector map
// topology.
//
// A vector map is modeled as lines (points, lines, boundaries,
// centroids, faces, kernels) plus, at support level 2, the full
// topological graph of nodes, areas and isles built over them. This
// package reports on that structure; it never edits geometry, repairs
// topology or reprojects coordinates. Building the model is the
// storage engine's job and happens before any reporter runs.
//
// # Basic Usage
//
//	m, err := vectopo.Open("parcels.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ext := m.Extent()
//	fmt.Printf("%s covers (%g, %g)-(%g, %g)\n",
//	    m.Name(), ext.MinX, ext.MinY, ext.MaxX, ext.MaxY)
//
// # Reports
//
// The Report method renders the requested sections in a fixed order
// (region, topology, columns) regardless of how they were selected, so
// output is stable and diffable:
//
//	err := m.Report(os.Stdout, vectopo.ReportOptions{
//	    Region:   true,
//	    Topology: true,
//	})
//
// Maps at support level 1 carry no topological graph; the topology
// section of their report is reduced to a note rather than failing.
//
// # Consistency Findings
//
// Topology reports include a consistency section listing structural
// violations: areas whose outer ring does not close, isles lying
// outside their owning area, and boundaries whose side references
// resolve to nothing. Findings are data; nothing is repaired.
//
//	summary := m.Topology()
//	for _, f := range summary.Findings {
//	    fmt.Printf("%s: %s\n", f.Kind, f.Detail)
//	}
//
// # Catalogs
//
// A Catalog indexes the extents of many opened maps and answers
// spatial queries, for picking the maps that cover a region of
// interest:
//
//	cat := vectopo.NewCatalog()
//	cat.Add(m, "parcels.yaml")
//	hits := cat.Query(viewport)
package vectopo
