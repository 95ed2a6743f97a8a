package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is returned when a move direction other than L/R/S is applied.
var ErrInvalidMove = errors.New("invalid move direction")

// ErrRunNotFound is returned when a run ID cannot be found in a store.
var ErrRunNotFound = errors.New("run not found")

// ErrInvalidDefinition is the sentinel wrapped by every DefinitionError.
var ErrInvalidDefinition = errors.New("invalid machine definition")

// DefinitionError describes why a machine definition was rejected at
// construction time. No partial machine is ever usable after one of these.
type DefinitionError struct {
	Field  string // the offending field, e.g. "initial_state"
	Detail string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid machine definition: %s: %s", e.Field, e.Detail)
}

func (e *DefinitionError) Unwrap() error {
	return ErrInvalidDefinition
}
