package vectopo

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Catalog provides fast spatial queries over a collection of opened
// maps. It stores each map's name, path and extent and answers
// "which maps cover this region" in O(log n) via an R-tree over the
// extents.
//
// Example:
//
//	cat := vectopo.NewCatalog()
//	for _, path := range paths {
//	    m, err := vectopo.Open(path)
//	    if err != nil {
//	        continue
//	    }
//	    cat.Add(m, path)
//	}
//	hits := cat.Query(viewport)
type Catalog struct {
	entries []CatalogEntry
	rtree   *rtreego.Rtree
}

// CatalogEntry is the indexed record of one map.
type CatalogEntry struct {
	Name   string
	Path   string
	Extent Extent
}

// indexedEntry wraps a catalog entry for R-tree storage.
type indexedEntry struct {
	entry CatalogEntry
}

// Bounds implements rtreego.Spatial.
func (e *indexedEntry) Bounds() rtreego.Rect {
	return rectForExtent(e.entry.Extent)
}

// rectForExtent converts an extent to an R-tree rectangle, padding
// degenerate axes. R-tree rectangles require non-zero dimensions.
func rectForExtent(ext Extent) rtreego.Rect {
	const epsilon = 1e-9

	w := ext.MaxX - ext.MinX
	h := ext.MaxY - ext.MinY
	if w < epsilon {
		w = epsilon
	}
	if h < epsilon {
		h = epsilon
	}

	rect, _ := rtreego.NewRect(rtreego.Point{ext.MinX, ext.MinY}, []float64{w, h})
	return rect
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Add indexes an opened map under the given path. Maps with no
// geometry are recorded but never returned by spatial queries.
func (c *Catalog) Add(m *Map, path string) {
	entry := CatalogEntry{
		Name:   m.Name(),
		Path:   path,
		Extent: m.Extent(),
	}
	c.entries = append(c.entries, entry)
	if !entry.Extent.Empty {
		c.rtree.Insert(&indexedEntry{entry: entry})
	}
}

// Len returns the number of maps in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every catalog entry sorted by name.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Query returns the maps whose extent intersects the given extent,
// sorted by name. An empty query extent matches nothing.
func (c *Catalog) Query(ext Extent) []CatalogEntry {
	if ext.Empty {
		return nil
	}

	spatials := c.rtree.SearchIntersect(rectForExtent(ext))

	out := make([]CatalogEntry, 0, len(spatials))
	for _, s := range spatials {
		entry := s.(*indexedEntry).entry
		// The R-tree rectangles are epsilon-padded; confirm the real
		// extents intersect.
		if entry.Extent.Intersects(ext) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
