package topo

import (
	"errors"
	"testing"
)

func attributedModel() *Model {
	m := NewModel("attr", Level2)
	m.AddDBLink(DBLink{
		Layer: 1,
		Name:  "contours",
		Table: "contour_attrs",
		Key:   "cat",
		Columns: []Column{
			{Name: "id", Type: ColumnInteger},
			{Name: "name", Type: ColumnText, Nullable: true},
			{Name: "elev", Type: ColumnDouble, Nullable: true},
		},
	})
	m.AddDBLink(DBLink{
		Layer: 2,
		Table: "labels",
		Key:   "cat",
		Columns: []Column{
			{Name: "cat", Type: ColumnInteger},
			{Name: "label", Type: ColumnText, Nullable: true},
		},
	})
	return m
}

func TestListColumnsOrder(t *testing.T) {
	m := attributedModel()

	// Declared as (id, name, elev); id/name/elev would re-sort
	// alphabetically to (elev, id, name), so this catches sorting.
	cols, err := m.ListColumns("1", "")
	if err != nil {
		t.Fatalf("ListColumns failed: %v", err)
	}
	want := []string{"id", "name", "elev"}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i, name := range want {
		if cols[i].Name != name {
			t.Errorf("column %d = %q, want %q", i, cols[i].Name, name)
		}
	}
}

func TestListColumnsSelectors(t *testing.T) {
	m := attributedModel()

	tests := []struct {
		name      string
		layer     string
		table     string
		wantFirst string
		wantErr   string // "", "layer" or "table"
	}{
		{name: "by number", layer: "2", wantFirst: "cat"},
		{name: "by name", layer: "contours", wantFirst: "id"},
		{name: "default first link", layer: "", wantFirst: "id"},
		{name: "explicit matching table", layer: "1", table: "contour_attrs", wantFirst: "id"},
		{name: "unknown layer", layer: "does_not_exist", wantErr: "layer"},
		{name: "unknown layer number", layer: "9", wantErr: "layer"},
		{name: "wrong table", layer: "1", table: "labels", wantErr: "table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := m.ListColumns(tt.layer, tt.table)
			switch tt.wantErr {
			case "layer":
				var e *ErrNoSuchLayer
				if !errors.As(err, &e) {
					t.Fatalf("error = %v, want ErrNoSuchLayer", err)
				}
			case "table":
				var e *ErrNoSuchTable
				if !errors.As(err, &e) {
					t.Fatalf("error = %v, want ErrNoSuchTable", err)
				}
			default:
				if err != nil {
					t.Fatalf("ListColumns failed: %v", err)
				}
				if cols[0].Name != tt.wantFirst {
					t.Errorf("first column = %q, want %q", cols[0].Name, tt.wantFirst)
				}
			}
		})
	}
}

func TestListColumnsNoLinks(t *testing.T) {
	m := NewModel("bare", Level2)

	_, err := m.ListColumns("", "")
	var e *ErrNoSuchLayer
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want ErrNoSuchLayer", err)
	}
}
