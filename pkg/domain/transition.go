package domain

// Transition is the target of one transition-function entry.
// Immutable once built.
type Transition struct {
	Next  string `json:"next"`
	Write string `json:"write"`
	Move  Move   `json:"move"`
}

// TableEntry pairs a (state, read symbol) key with its Transition.
// It is the flat, fully-expanded form the run loop operates on; the
// scalar-or-list Rule shorthand never reaches the engine.
type TableEntry struct {
	State string     `json:"state"`
	Read  string     `json:"read"`
	To    Transition `json:"to"`
}
