package dsl

import (
	"github.com/aretw0/cinta/pkg/domain"
)

// Builder accumulates a machine description and compiles it into a validated
// Definition.
type Builder struct {
	cfg domain.DefinitionConfig
}

// NewMachine creates a builder for a named machine.
func NewMachine(name string) *Builder {
	return &Builder{
		cfg: domain.DefinitionConfig{Name: name},
	}
}

// States declares the state set.
func (b *Builder) States(ids ...string) *Builder {
	b.cfg.States = append(b.cfg.States, ids...)
	return b
}

// InputAlphabet declares the (informational) input alphabet.
func (b *Builder) InputAlphabet(symbols ...string) *Builder {
	b.cfg.InputAlphabet = append(b.cfg.InputAlphabet, symbols...)
	return b
}

// TapeAlphabet declares the tape alphabet.
func (b *Builder) TapeAlphabet(symbols ...string) *Builder {
	b.cfg.TapeAlphabet = append(b.cfg.TapeAlphabet, symbols...)
	return b
}

// Blank sets the blank symbol (default "B").
func (b *Builder) Blank(symbol string) *Builder {
	b.cfg.Blank = symbol
	return b
}

// Initial sets the initial state.
func (b *Builder) Initial(state string) *Builder {
	b.cfg.InitialState = state
	return b
}

// Accept declares accept states.
func (b *Builder) Accept(states ...string) *Builder {
	b.cfg.AcceptStates = append(b.cfg.AcceptStates, states...)
	return b
}

// Rule adds a single-symbol transition rule.
func (b *Builder) Rule(state, read, write, move, next string) *Builder {
	b.cfg.Rules = append(b.cfg.Rules, domain.Rule{
		State: state,
		Read:  domain.SymbolList{read},
		Write: domain.SymbolList{write},
		Move:  move,
		Next:  next,
	})
	return b
}

// RuleList adds a rule whose read and write fields are parallel symbol lists.
// A single write symbol is broadcast over the read list at build time.
func (b *Builder) RuleList(state string, read, write []string, move, next string) *Builder {
	b.cfg.Rules = append(b.cfg.Rules, domain.Rule{
		State: state,
		Read:  domain.SymbolList(read),
		Write: domain.SymbolList(write),
		Move:  move,
		Next:  next,
	})
	return b
}

// Build validates the accumulated description into a Definition.
func (b *Builder) Build() (*domain.Definition, error) {
	return domain.NewDefinition(b.cfg)
}
