package store

import "fmt"

// ErrMapOpen indicates the map could not be read or decoded.
type ErrMapOpen struct {
	Path string
	Err  error
}

func (e *ErrMapOpen) Error() string {
	return fmt.Sprintf("open map %q: %v", e.Path, e.Err)
}

func (e *ErrMapOpen) Unwrap() error {
	return e.Err
}

// ErrBadDocument indicates a map document that decoded but failed
// structural validation.
type ErrBadDocument struct {
	Reason string
}

func (e *ErrBadDocument) Error() string {
	return fmt.Sprintf("invalid map document: %s", e.Reason)
}
