package vectopo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogMap(t *testing.T, name string, minX, minY, size float64) *Map {
	t.Helper()
	m, err := Decode([]byte(`
name: ` + name + `
level: 1
lines:
  - id: 1
    type: line
    coords: [[` +
		FormatDouble(minX, 0) + `, ` + FormatDouble(minY, 0) + `], [` +
		FormatDouble(minX+size, 0) + `, ` + FormatDouble(minY+size, 0) + `]]
`))
	require.NoError(t, err)
	return m
}

func TestCatalogQuery(t *testing.T) {
	cat := NewCatalog()
	cat.Add(catalogMap(t, "west", 0, 0, 10), "west.yaml")
	cat.Add(catalogMap(t, "east", 100, 0, 10), "east.yaml")
	cat.Add(catalogMap(t, "both", 0, 0, 120), "both.yaml")

	require.Equal(t, 3, cat.Len())

	hits := cat.Query(Extent{MinX: 2, MaxX: 8, MinY: 2, MaxY: 8})
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"both", "west"}, names)

	hits = cat.Query(Extent{MinX: 500, MaxX: 600, MinY: 500, MaxY: 600})
	assert.Empty(t, hits)
}

func TestCatalogEmptyQueryExtent(t *testing.T) {
	cat := NewCatalog()
	cat.Add(catalogMap(t, "west", 0, 0, 10), "west.yaml")

	assert.Nil(t, cat.Query(Extent{Empty: true}))
}

func TestCatalogSkipsEmptyMapsInQueries(t *testing.T) {
	cat := NewCatalog()

	void, err := Decode([]byte("name: void\nlevel: 1\n"))
	require.NoError(t, err)
	cat.Add(void, "void.yaml")
	cat.Add(catalogMap(t, "west", 0, 0, 10), "west.yaml")

	// Recorded in the catalog but invisible to spatial queries.
	assert.Equal(t, 2, cat.Len())
	hits := cat.Query(Extent{MinX: -100, MaxX: 100, MinY: -100, MaxY: 100})
	require.Len(t, hits, 1)
	assert.Equal(t, "west", hits[0].Name)
}

func TestCatalogEntriesSorted(t *testing.T) {
	cat := NewCatalog()
	cat.Add(catalogMap(t, "zulu", 0, 0, 1), "z.yaml")
	cat.Add(catalogMap(t, "alpha", 5, 5, 1), "a.yaml")

	entries := cat.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zulu", entries[1].Name)
}
