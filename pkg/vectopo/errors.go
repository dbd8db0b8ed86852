package vectopo

import (
	"errors"

	"github.com/beetlebugorg/vectopo/internal/topo"
)

// IsNotFound reports whether err is a missing layer or table, the
// failures callers map to "requested attribute data does not exist".
func IsNotFound(err error) bool {
	var noLayer *topo.ErrNoSuchLayer
	var noTable *topo.ErrNoSuchTable
	return errors.As(err, &noLayer) || errors.As(err, &noTable)
}

func isNoLayer(err error) bool {
	var noLayer *topo.ErrNoSuchLayer
	return errors.As(err, &noLayer)
}
