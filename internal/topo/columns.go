package topo

import "strconv"

// ColumnType is the declared attribute column type.
type ColumnType string

const (
	ColumnInteger ColumnType = "INTEGER"
	ColumnDouble  ColumnType = "DOUBLE PRECISION"
	ColumnText    ColumnType = "TEXT"
	ColumnDate    ColumnType = "DATE"
)

// Column describes one attribute-table column.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// DBLink binds a map layer to an attribute table. A map may carry any
// number of links; their declaration order is preserved.
type DBLink struct {
	Layer   int    // layer number, unique per map
	Name    string // optional layer name
	Table   string // attribute table
	Key     string // key column joining features to rows
	Columns []Column
}

// ListColumns resolves a layer selector and returns that layer's
// columns in the schema's declared order, never re-sorted, so output
// stays stable and diffable.
//
// The selector is the layer number or the layer name; empty selects
// the first declared link. A non-empty table must match the resolved
// link's table.
func (m *Model) ListColumns(layer, table string) ([]Column, error) {
	link, err := m.resolveLink(layer)
	if err != nil {
		return nil, err
	}
	if table != "" && table != link.Table {
		return nil, &ErrNoSuchTable{Layer: layer, Table: table}
	}
	return link.Columns, nil
}

// Link resolves a layer selector to its attribute link. Selector
// grammar matches ListColumns.
func (m *Model) Link(layer string) (DBLink, error) {
	return m.resolveLink(layer)
}

// resolveLink finds the attribute link for a layer selector.
func (m *Model) resolveLink(layer string) (DBLink, error) {
	if len(m.links) == 0 {
		return DBLink{}, &ErrNoSuchLayer{Layer: layer}
	}
	if layer == "" {
		return m.links[0], nil
	}

	num, isNum := 0, false
	if n, err := strconv.Atoi(layer); err == nil {
		num, isNum = n, true
	}

	for _, link := range m.links {
		if isNum && link.Layer == num {
			return link, nil
		}
		if link.Name != "" && link.Name == layer {
			return link, nil
		}
	}
	return DBLink{}, &ErrNoSuchLayer{Layer: layer}
}
