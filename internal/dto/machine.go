// Package dto carries wire representations of machine documents for surfaces
// that receive loosely-typed maps (e.g. inline definitions on the HTTP API).
package dto

import (
	"fmt"
	"reflect"

	"github.com/aretw0/cinta/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// MachineSpec mirrors the "machine" document section with mapstructure tags.
type MachineSpec struct {
	Name          string        `mapstructure:"name"`
	States        []string      `mapstructure:"states"`
	InputAlphabet []string      `mapstructure:"input_alphabet"`
	TapeAlphabet  []string      `mapstructure:"tape_alphabet"`
	InitialState  string        `mapstructure:"initial_state"`
	AcceptStates  []string      `mapstructure:"accept_states"`
	BlankSymbol   string        `mapstructure:"blank_symbol"`
	Transitions   []domain.Rule `mapstructure:"transitions"`
	Inputs        []string      `mapstructure:"inputs"`
}

// symbolListHook lets a scalar string decode into a one-element SymbolList,
// matching the YAML/JSON shorthand.
func symbolListHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.SymbolList{}) {
		return data, nil
	}
	if from.Kind() == reflect.String {
		return domain.SymbolList{data.(string)}, nil
	}
	return data, nil
}

// DecodeMachine converts a generic map into a MachineSpec.
func DecodeMachine(raw map[string]any) (*MachineSpec, error) {
	var spec MachineSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: symbolListHook,
		Result:     &spec,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build machine decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode machine spec: %w", err)
	}
	return &spec, nil
}

// Definition validates the spec into an immutable Definition.
func (s *MachineSpec) Definition() (*domain.Definition, error) {
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
