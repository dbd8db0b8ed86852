package cli

import (
	"errors"
	"fmt"

	"github.com/beetlebugorg/vectopo/pkg/vectopo"
)

// Exit codes of the vinfo command.
const (
	ExitOK            = 0 // report printed
	ExitOpenFailed    = 1 // map not found or not openable
	ExitInvalidOption = 2 // contradictory or malformed flags
	ExitNotFound      = 3 // requested layer or table not found
)

// ErrInvalidOption indicates a flag combination that leaves nothing
// valid to report. Option errors abort before any report runs.
type ErrInvalidOption struct {
	Reason string
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid options: %s", e.Reason)
}

// ExitCode maps an execution error to the command's exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var invalid *ErrInvalidOption
	if errors.As(err, &invalid) {
		return ExitInvalidOption
	}
	if vectopo.IsNotFound(err) {
		return ExitNotFound
	}
	// Everything else is an open or I/O failure, store.ErrMapOpen
	// included.
	return ExitOpenFailed
}
