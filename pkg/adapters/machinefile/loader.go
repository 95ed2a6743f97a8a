// Package machinefile loads Turing machine documents from YAML or JSON files.
//
// A document has a single "machine" root key carrying the formal definition
// plus the list of input strings to simulate:
//
//	machine:
//	  states: [q0, qf]
//	  input_alphabet: [a]
//	  tape_alphabet: [a, B]
//	  initial_state: q0
//	  accept_states: [qf]
//	  blank_symbol: B
//	  transitions:
//	    - {state: q0, read: a, write: a, move: S, next: qf}
//	  inputs: ["a", ""]
package machinefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/cinta/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Spec is the declarative machine section of a document.
type Spec struct {
	Name          string        `yaml:"name" json:"name"`
	States        []string      `yaml:"states" json:"states"`
	InputAlphabet []string      `yaml:"input_alphabet" json:"input_alphabet"`
	TapeAlphabet  []string      `yaml:"tape_alphabet" json:"tape_alphabet"`
	InitialState  string        `yaml:"initial_state" json:"initial_state"`
	AcceptStates  []string      `yaml:"accept_states" json:"accept_states"`
	BlankSymbol   string        `yaml:"blank_symbol" json:"blank_symbol"`
	Transitions   []domain.Rule `yaml:"transitions" json:"transitions"`
	Inputs        []string      `yaml:"inputs" json:"inputs"`
}

// Document is a parsed machine file.
type Document struct {
	Machine *Spec `yaml:"machine" json:"machine"`
}

// Load reads and parses a machine document. The extension selects the codec:
// ".json" parses as JSON, everything else as YAML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine file: %w", err)
	}

	var doc Document
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse machine JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse machine YAML: %w", err)
		}
	}

	if doc.Machine == nil {
		return nil, fmt.Errorf("machine file %s: missing root key %q", path, "machine")
	}
	return &doc, nil
}

// Definition validates the document and builds the immutable Definition.
func (d *Document) Definition() (*domain.Definition, error) {
	return d.Machine.Definition()
}

// Inputs returns the input strings configured in the document.
func (d *Document) Inputs() []string {
	return d.Machine.Inputs
}

// Definition builds a validated Definition from the spec.
func (s *Spec) Definition() (*domain.Definition, error) {
	return domain.NewDefinition(domain.DefinitionConfig{
		Name:          s.Name,
		States:        s.States,
		InputAlphabet: s.InputAlphabet,
		TapeAlphabet:  s.TapeAlphabet,
		InitialState:  s.InitialState,
		AcceptStates:  s.AcceptStates,
		Blank:         s.BlankSymbol,
		Rules:         s.Transitions,
	})
}
