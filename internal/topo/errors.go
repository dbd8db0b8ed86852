package topo

import (
	"fmt"
)

// ErrLineNotFound indicates a lookup for a line ID the model does not hold.
type ErrLineNotFound struct {
	ID int
}

func (e *ErrLineNotFound) Error() string {
	return fmt.Sprintf("line %d not found", e.ID)
}

// ErrNoSuchLayer indicates the requested layer has no attribute binding.
type ErrNoSuchLayer struct {
	Layer string
}

func (e *ErrNoSuchLayer) Error() string {
	if e.Layer == "" {
		return "map has no attribute layers"
	}
	return fmt.Sprintf("layer %q has no attribute binding", e.Layer)
}

// ErrNoSuchTable indicates an explicitly named table is absent from the
// resolved layer's binding.
type ErrNoSuchTable struct {
	Layer string
	Table string
}

func (e *ErrNoSuchTable) Error() string {
	return fmt.Sprintf("table %q not found on layer %q", e.Table, e.Layer)
}

// ErrUnsupportedAtLevel indicates a query that needs the full topology
// graph was made against a level 1 model. Reporters recover from this
// locally; it never crosses the facade.
type ErrUnsupportedAtLevel struct {
	Level SupportLevel
	Op    string
}

func (e *ErrUnsupportedAtLevel) Error() string {
	return fmt.Sprintf("%s requires full topology, map is %s", e.Op, e.Level)
}
