package topo

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// areaIndex provides O(log n) lookup of areas by extent. The
// consistency pass uses it to name which areas actually contain a
// misplaced isle.
type areaIndex struct {
	rtree *rtreego.Rtree
}

// indexedArea wraps an area's ring extent for R-tree storage.
type indexedArea struct {
	id  int
	ext Extent
}

// Bounds implements rtreego.Spatial.
func (a *indexedArea) Bounds() rtreego.Rect {
	return rectForExtent(a.ext)
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

// newAreaIndex builds an index over the given per-area ring extents.
func newAreaIndex(extents map[int]Extent) *areaIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	for id, ext := range extents {
		if ext.Empty {
			continue
		}
		rtree.Insert(&indexedArea{id: id, ext: ext})
	}
	return &areaIndex{rtree: rtree}
}

// intersecting returns the IDs of areas whose extent intersects the
// given extent, ascending.
func (idx *areaIndex) intersecting(ext Extent) []int {
	if ext.Empty {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(rectForExtent(ext))

	ids := make([]int, 0, len(spatials))
	for _, s := range spatials {
		ids = append(ids, s.(*indexedArea).id)
	}
	sort.Ints(ids)
	return ids
}
