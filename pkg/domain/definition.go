package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DefaultBlank is the blank symbol used when a machine document omits one.
const DefaultBlank = "B"

// DefinitionConfig is the raw material for a Definition, as supplied by a
// loader (YAML/JSON document, DSL builder, inline HTTP payload).
type DefinitionConfig struct {
	Name          string
	States        []string
	InputAlphabet []string
	TapeAlphabet  []string
	InitialState  string
	AcceptStates  []string
	Blank         string
	Rules         []Rule
}

// stateSymbol is the composite transition-table key.
type stateSymbol struct {
	state  string
	symbol string
}

// Definition is a validated, immutable Turing machine definition.
// It is read-only after construction and safe to share across concurrent runs.
type Definition struct {
	name          string
	states        map[string]bool
	inputAlphabet map[string]bool
	tapeAlphabet  map[string]bool
	initialState  string
	acceptStates  map[string]bool
	blank         string
	table         map[stateSymbol]Transition
}

// NewDefinition validates cfg and expands its rules into the flat transition
// table. It fails with a DefinitionError when the initial state is not a
// member of the states, an accept state is not a member of the states, the
// blank symbol is missing from the tape alphabet, a rule references a symbol
// outside the tape alphabet, or a rule's read/write lists cannot be aligned.
func NewDefinition(cfg DefinitionConfig) (*Definition, error) {
	def := &Definition{
		name:          cfg.Name,
		states:        toSet(cfg.States),
		inputAlphabet: toSet(cfg.InputAlphabet),
		tapeAlphabet:  toSet(cfg.TapeAlphabet),
		initialState:  cfg.InitialState,
		acceptStates:  toSet(cfg.AcceptStates),
		blank:         cfg.Blank,
		table:         make(map[stateSymbol]Transition),
	}
	if def.blank == "" {
		def.blank = DefaultBlank
	}

	if !def.states[def.initialState] {
		return nil, &DefinitionError{
			Field:  "initial_state",
			Detail: fmt.Sprintf("%q is not a member of states", def.initialState),
		}
	}
	for _, s := range cfg.AcceptStates {
		if !def.states[s] {
			return nil, &DefinitionError{
				Field:  "accept_states",
				Detail: fmt.Sprintf("%q is not a member of states", s),
			}
		}
	}
	if !def.tapeAlphabet[def.blank] {
		return nil, &DefinitionError{
			Field:  "blank_symbol",
			Detail: fmt.Sprintf("%q is not a member of the tape alphabet", def.blank),
		}
	}

	for _, rule := range cfg.Rules {
		move, err := ParseMove(rule.Move)
		if err != nil {
			return nil, &DefinitionError{
				Field:  "transitions",
				Detail: fmt.Sprintf("rule for state %q: %v", rule.State, err),
			}
		}

		pairs, err := rule.expand()
		if err != nil {
			return nil, err
		}

		for _, pair := range pairs {
			read, write := pair[0], pair[1]
			if !def.tapeAlphabet[read] {
				return nil, &DefinitionError{
					Field:  "transitions",
					Detail: fmt.Sprintf("read symbol %q is not a member of the tape alphabet", read),
				}
			}
			if !def.tapeAlphabet[write] {
				return nil, &DefinitionError{
					Field:  "transitions",
					Detail: fmt.Sprintf("write symbol %q is not a member of the tape alphabet", write),
				}
			}
			def.table[stateSymbol{rule.State, read}] = Transition{
				Next:  rule.Next,
				Write: write,
				Move:  move,
			}
		}
	}

	return def, nil
}

// Name returns the machine name ("" when the document carries none).
func (d *Definition) Name() string { return d.name }

// Blank returns the blank symbol.
func (d *Definition) Blank() string { return d.blank }

// InitialState returns the declared initial state.
func (d *Definition) InitialState() string { return d.initialState }

// HasState reports whether id is a declared state.
func (d *Definition) HasState(id string) bool { return d.states[id] }

// Accepts reports whether state is an accept state.
func (d *Definition) Accepts(state string) bool { return d.acceptStates[state] }

// Transition looks up the transition for (state, symbol).
// Absence is the normal halting condition, not an error.
func (d *Definition) Transition(state, symbol string) (Transition, bool) {
	t, ok := d.table[stateSymbol{state, symbol}]
	return t, ok
}

// States returns the declared state set, sorted.
func (d *Definition) States() []string { return sortedKeys(d.states) }

// AcceptStates returns the accept state set, sorted.
func (d *Definition) AcceptStates() []string { return sortedKeys(d.acceptStates) }

// InputAlphabet returns the (informational) input alphabet, sorted.
func (d *Definition) InputAlphabet() []string { return sortedKeys(d.inputAlphabet) }

// TapeAlphabet returns the tape alphabet, sorted.
func (d *Definition) TapeAlphabet() []string { return sortedKeys(d.tapeAlphabet) }

// Table returns the expanded transition table in deterministic order.
func (d *Definition) Table() []TableEntry {
	entries := make([]TableEntry, 0, len(d.table))
	for key, t := range d.table {
		entries = append(entries, TableEntry{State: key.state, Read: key.symbol, To: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].State != entries[j].State {
			return entries[i].State < entries[j].State
		}
		return entries[i].Read < entries[j].Read
	})
	return entries
}

// definitionSnapshot is the serialized shape of a Definition.
type definitionSnapshot struct {
	Name          string       `json:"name,omitempty"`
	States        []string     `json:"states"`
	InputAlphabet []string     `json:"input_alphabet"`
	TapeAlphabet  []string     `json:"tape_alphabet"`
	InitialState  string       `json:"initial_state"`
	AcceptStates  []string     `json:"accept_states"`
	BlankSymbol   string       `json:"blank_symbol"`
	Transitions   []TableEntry `json:"transitions"`
}

// MarshalJSON serializes the definition for introspection surfaces.
func (d *Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(definitionSnapshot{
		Name:          d.name,
		States:        d.States(),
		InputAlphabet: d.InputAlphabet(),
		TapeAlphabet:  d.TapeAlphabet(),
		InitialState:  d.initialState,
		AcceptStates:  d.AcceptStates(),
		BlankSymbol:   d.blank,
		Transitions:   d.Table(),
	})
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
