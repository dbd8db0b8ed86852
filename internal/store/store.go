// Package store loads vector map documents into topology models.
//
// The store is the boundary to the vector-storage engine: it hands a
// fully built model to the inspection layer and is the only place that
// touches the filesystem. Map documents are YAML.
package store

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/vectopo/internal/topo"
)

var validate = validator.New()

// Document is the on-disk form of a vector map.
type Document struct {
	Name   string     `yaml:"name" validate:"required"`
	Level  int        `yaml:"level" validate:"required,oneof=1 2"`
	Lines  []LineDoc  `yaml:"lines" validate:"dive"`
	Nodes  []NodeDoc  `yaml:"nodes" validate:"dive"`
	Areas  []AreaDoc  `yaml:"areas" validate:"dive"`
	Isles  []IsleDoc  `yaml:"isles" validate:"dive"`
	Layers []LayerDoc `yaml:"layers" validate:"dive"`
}

// LineDoc is one vector feature. Coordinates are [x, y] or [x, y, z];
// a line is 3D when its first coordinate carries three values.
type LineDoc struct {
	ID     int         `yaml:"id" validate:"required,min=1"`
	Type   string      `yaml:"type" validate:"required"`
	Coords [][]float64 `yaml:"coords" validate:"required,min=1,dive,min=2,max=3"`
	Left   int         `yaml:"left"`
	Right  int         `yaml:"right"`
}

// NodeDoc is one graph vertex with its signed incident line list.
type NodeDoc struct {
	ID    int       `yaml:"id" validate:"required,min=1"`
	Coord []float64 `yaml:"coord" validate:"required,min=2,max=3"`
	Lines []int     `yaml:"lines"`
}

// AreaDoc is one closed region.
type AreaDoc struct {
	ID         int   `yaml:"id" validate:"required,min=1"`
	Boundaries []int `yaml:"boundaries" validate:"required,min=1"`
	Isles      []int `yaml:"isles"`
	Centroid   int   `yaml:"centroid"`
}

// IsleDoc is one hole inside an area.
type IsleDoc struct {
	ID         int   `yaml:"id" validate:"required,min=1"`
	Boundaries []int `yaml:"boundaries" validate:"required,min=1"`
	Area       int   `yaml:"area" validate:"required,min=1"`
}

// LayerDoc binds a layer to an attribute table.
type LayerDoc struct {
	Layer   int         `yaml:"layer" validate:"required,min=1"`
	Name    string      `yaml:"name"`
	Table   string      `yaml:"table" validate:"required"`
	Key     string      `yaml:"key" validate:"required"`
	Columns []ColumnDoc `yaml:"columns" validate:"required,min=1,dive"`
}

// ColumnDoc is one declared attribute column. Column order in the
// document is the schema order.
type ColumnDoc struct {
	Name     string `yaml:"name" validate:"required"`
	Type     string `yaml:"type" validate:"required,oneof=INTEGER 'DOUBLE PRECISION' TEXT DATE"`
	Nullable bool   `yaml:"nullable"`
}

// Load reads and decodes a map document from disk.
func Load(path string) (*topo.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrMapOpen{Path: path, Err: err}
	}
	m, err := Decode(data)
	if err != nil {
		return nil, &ErrMapOpen{Path: path, Err: err}
	}
	return m, nil
}

// Decode parses a map document and builds its model.
func Decode(data []byte) (*topo.Model, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode map document: %w", err)
	}
	return FromDocument(&doc)
}

// FromDocument validates a document and builds the model it describes.
func FromDocument(doc *Document) (*topo.Model, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, &ErrBadDocument{Reason: flattenValidation(err)}
	}

	m := topo.NewModel(doc.Name, topo.SupportLevel(doc.Level))

	for _, ld := range doc.Lines {
		lineType, ok := topo.ParseLineType(ld.Type)
		if !ok {
			return nil, &ErrBadDocument{
				Reason: fmt.Sprintf("line %d: unknown type %q", ld.ID, ld.Type),
			}
		}
		hasZ := len(ld.Coords[0]) == 3
		coords := make([]topo.Coord, 0, len(ld.Coords))
		for i, c := range ld.Coords {
			if (len(c) == 3) != hasZ {
				return nil, &ErrBadDocument{
					Reason: fmt.Sprintf("line %d: coordinate %d mixes 2D and 3D", ld.ID, i),
				}
			}
			coord := topo.Coord{X: c[0], Y: c[1]}
			if hasZ {
				coord.Z = c[2]
			}
			coords = append(coords, coord)
		}
		m.AddLine(&topo.Line{
			ID:     ld.ID,
			Type:   lineType,
			Coords: coords,
			HasZ:   hasZ,
			Left:   ld.Left,
			Right:  ld.Right,
		})
	}

	for _, nd := range doc.Nodes {
		coord := topo.Coord{X: nd.Coord[0], Y: nd.Coord[1]}
		if len(nd.Coord) == 3 {
			coord.Z = nd.Coord[2]
		}
		m.AddNode(&topo.Node{ID: nd.ID, Coord: coord, Lines: nd.Lines})
	}

	for _, ad := range doc.Areas {
		m.AddArea(&topo.Area{
			ID:         ad.ID,
			Boundaries: ad.Boundaries,
			Isles:      ad.Isles,
			Centroid:   ad.Centroid,
		})
	}

	for _, id := range doc.Isles {
		m.AddIsle(&topo.Isle{ID: id.ID, Boundaries: id.Boundaries, Area: id.Area})
	}

	for _, ld := range doc.Layers {
		cols := make([]topo.Column, 0, len(ld.Columns))
		for _, cd := range ld.Columns {
			cols = append(cols, topo.Column{
				Name:     cd.Name,
				Type:     topo.ColumnType(cd.Type),
				Nullable: cd.Nullable,
			})
		}
		m.AddDBLink(topo.DBLink{
			Layer:   ld.Layer,
			Name:    ld.Name,
			Table:   ld.Table,
			Key:     ld.Key,
			Columns: cols,
		})
	}

	return m, nil
}

// flattenValidation turns validator's error list into one readable
// message.
func flattenValidation(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msg := ""
	for i, fe := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}
	return msg
}
