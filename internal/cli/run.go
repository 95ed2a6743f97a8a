// Package cli implements the command logic behind the cinta binary.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/presentation/tui"
	"github.com/aretw0/cinta/pkg/adapters/machinefile"
	"github.com/aretw0/cinta/pkg/domain"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	MachinePath string
	Inputs      []string // overrides the document's inputs when non-empty
	MaxSteps    int      // cinta.NoStepLimit means unbounded
	JSON        bool     // NDJSON results, no banner or traces
	Quiet       bool     // verdict lines only
	Report      bool     // markdown summary after the runs
	Debug       bool
	RedisURL    string

	// Output defaults to os.Stdout; tests inject a buffer.
	Output io.Writer
}

// Execute handles the run command: load the machine document, simulate every
// input, and print traces and verdicts.
func Execute(opts RunOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Debug)

	doc, err := machinefile.Load(opts.MachinePath)
	if err != nil {
		return err
	}
	def, err := doc.Definition()
	if err != nil {
		return err
	}

	inputs := doc.Inputs()
	if len(opts.Inputs) > 0 {
		inputs = opts.Inputs
	}
	if len(inputs) == 0 {
		fmt.Fprintln(out, "No inputs configured in the machine file (machine -> inputs).")
		return nil
	}

	store, closeStore, err := newStore(opts.RedisURL)
	if err != nil {
		return err
	}
	defer closeStore()

	engineOpts := []cinta.Option{
		cinta.WithLogger(logger),
		cinta.WithMaxSteps(opts.MaxSteps),
	}
	if store != nil {
		engineOpts = append(engineOpts, cinta.WithStore(store))
	}
	engine, err := cinta.New(def, engineOpts...)
	if err != nil {
		return err
	}

	if !opts.JSON && !opts.Quiet {
		if isTerminal(out) {
			tui.PrintBanner()
		}
		fmt.Fprintln(out, "=== Turing Machine Simulator ===")
		fmt.Fprintf(out, "Machine file: %s\n", opts.MachinePath)
		fmt.Fprintf(out, "Inputs to simulate: %d\n\n", len(inputs))
	}

	ctx := context.Background()
	results := make([]*domain.RunResult, 0, len(inputs))

	for i, input := range inputs {
		result, err := engine.Run(ctx, input)
		if err != nil {
			return fmt.Errorf("run #%d failed: %w", i+1, err)
		}
		results = append(results, result)

		if opts.JSON {
			if err := json.NewEncoder(out).Encode(result); err != nil {
				return err
			}
			continue
		}

		printResult(out, i+1, result, opts.Quiet)
	}

	if opts.Report && !opts.JSON {
		return writeReport(out, results)
	}
	return nil
}

func printResult(out io.Writer, index int, result *domain.RunResult, quiet bool) {
	if quiet {
		fmt.Fprintf(out, "Result for %q: %s\n", result.Input, verdict(out, result))
		return
	}

	fmt.Fprintf(out, "--- Input #%d: %q ---\n", index, result.Input)
	for step, id := range result.IDs {
		fmt.Fprintf(out, "Step %03d: %s\n", step, id)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Result for %q: %s\n", result.Input, verdict(out, result))
	fmt.Fprintf(out, "Final state: %s\n", result.FinalState)
	fmt.Fprintf(out, "Final tape: %s\n", result.FinalTape)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out)
}

// verdict colors the verdict on terminals; plain text otherwise so piped
// output stays grep-friendly.
func verdict(out io.Writer, result *domain.RunResult) string {
	if isTerminal(out) {
		return tui.Verdict(result.Accepted)
	}
	return result.Verdict()
}
