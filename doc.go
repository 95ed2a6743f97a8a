/*
Package cinta simulates single-tape deterministic Turing machines described by
declarative YAML or JSON documents.

Given a machine definition (states, alphabets, transition rules) and an input
string, the engine executes the machine step by step and reports the full
trace of instantaneous descriptions, the acceptance verdict, the final state
and the final tape contents.

# Concept

The tape is sparse and bidirectionally infinite: only non-blank cells are
stored, keyed by signed position, so a run costs space proportional to the
cells it actually visits. The transition function is a flat table keyed by
(state, read symbol); a missing entry is the normal halting condition. An
optional step limit guards against non-terminating machines.

# Usage

	def, err := domain.NewDefinition(domain.DefinitionConfig{
		States:       []string{"q0", "qf"},
		TapeAlphabet: []string{"a", "B"},
		InitialState: "q0",
		AcceptStates: []string{"qf"},
		Rules: []domain.Rule{
			{State: "q0", Read: domain.SymbolList{"a"}, Write: domain.SymbolList{"a"}, Move: "S", Next: "qf"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	eng, err := cinta.New(def)
	if err != nil {
		log.Fatal(err)
	}

	result, err := eng.Run(context.Background(), "a")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Verdict(), result.FinalTape)

Machine documents on disk are loaded through pkg/adapters/machinefile, and the
cmd/cinta binary wraps the engine with run, validate, graph and serve commands.
*/
package cinta
