package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SymbolList holds the read/write field of a Rule, which may be declared as a
// single symbol or as a parallel list of symbols.
type SymbolList []string

// UnmarshalYAML accepts either a scalar ("a") or a sequence ([a, B]).
func (s *SymbolList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var sym string
		if err := value.Decode(&sym); err != nil {
			return err
		}
		*s = SymbolList{sym}
		return nil
	case yaml.SequenceNode:
		var syms []string
		if err := value.Decode(&syms); err != nil {
			return err
		}
		*s = SymbolList(syms)
		return nil
	default:
		return fmt.Errorf("symbol list: expected scalar or sequence, got yaml kind %d", value.Kind)
	}
}

// UnmarshalJSON accepts either a string or an array of strings.
func (s *SymbolList) UnmarshalJSON(data []byte) error {
	var sym string
	if err := json.Unmarshal(data, &sym); err == nil {
		*s = SymbolList{sym}
		return nil
	}
	var syms []string
	if err := json.Unmarshal(data, &syms); err != nil {
		return fmt.Errorf("symbol list: expected string or array of strings: %w", err)
	}
	*s = SymbolList(syms)
	return nil
}

// Rule is one declarative transition spec as it appears in a machine document.
// A list-valued Read expands into one concrete transition per symbol, all
// sharing the same next state and move. A scalar Write paired with a list Read
// is broadcast to match.
type Rule struct {
	State string     `json:"state" yaml:"state" mapstructure:"state"`
	Read  SymbolList `json:"read" yaml:"read" mapstructure:"read"`
	Write SymbolList `json:"write" yaml:"write" mapstructure:"write"`
	Move  string     `json:"move" yaml:"move" mapstructure:"move"`
	Next  string     `json:"next" yaml:"next" mapstructure:"next"`
}

// expand flattens the rule into concrete (read, write) symbol pairs.
// Returns a DefinitionError on non-broadcastable length mismatch.
func (r Rule) expand() ([][2]string, error) {
	reads := r.Read
	writes := r.Write

	if len(writes) == 1 && len(reads) > 1 {
		// Broadcast scalar write over the read list.
		broadcast := make(SymbolList, len(reads))
		for i := range reads {
			broadcast[i] = writes[0]
		}
		writes = broadcast
	}

	if len(reads) != len(writes) {
		return nil, &DefinitionError{
			Field:  "transitions",
			Detail: fmt.Sprintf("rule for state %q: read %v and write %v have mismatched lengths", r.State, []string(reads), []string(writes)),
		}
	}

	pairs := make([][2]string, len(reads))
	for i := range reads {
		pairs[i] = [2]string{reads[i], writes[i]}
	}
	return pairs, nil
}
