package cinta_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/pkg/dsl"
)

// Example simulates a one-transition machine and prints the configuration
// trace: the head's state in brackets, spliced into the tape at its position.
func Example() {
	def, err := dsl.NewMachine("accept-one-a").
		States("q0", "qf").
		InputAlphabet("a").
		TapeAlphabet("a", "B").
		Initial("q0").
		Accept("qf").
		Rule("q0", "a", "a", "S", "qf").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cinta.New(def)
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Run(context.Background(), "a")
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range result.IDs {
		fmt.Println(id)
	}
	fmt.Println(result.Verdict())
	// Output:
	// [q0]a
	// [qf]a
	// ACCEPTED
}

// Example_stepLimit bounds a non-halting machine and shows the sentinel that
// closes the trace when the limit fires.
func Example_stepLimit() {
	def, err := dsl.NewMachine("spinner").
		States("q0").
		TapeAlphabet("a", "B").
		Initial("q0").
		Rule("q0", "a", "a", "S", "q0").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cinta.New(def, cinta.WithMaxSteps(2))
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Run(context.Background(), "a")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.IDs[len(result.IDs)-1])
	fmt.Println(result.Steps)
	// Output:
	// >>> step limit reached, possible infinite loop
	// 2
}
