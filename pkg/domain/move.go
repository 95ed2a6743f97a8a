package domain

import (
	"fmt"
	"strings"
)

// Move is a head movement direction.
type Move string

const (
	MoveLeft  Move = "L"
	MoveRight Move = "R"
	MoveStay  Move = "S"
)

// ParseMove normalizes a direction string into a Move.
// It accepts lowercase input ("l", "r", "s") for YAML convenience.
func ParseMove(s string) (Move, error) {
	switch Move(strings.ToUpper(s)) {
	case MoveLeft:
		return MoveLeft, nil
	case MoveRight:
		return MoveRight, nil
	case MoveStay:
		return MoveStay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}

// Valid reports whether m is one of the three defined directions.
func (m Move) Valid() bool {
	return m == MoveLeft || m == MoveRight || m == MoveStay
}
