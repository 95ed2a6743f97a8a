// Package runtime implements the machine execution core: the sparse tape and
// the deterministic step/run loop that produces instantaneous-description
// traces.
package runtime

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/cinta/pkg/domain"
)

// NoStepLimit disables the step-limit safety valve.
const NoStepLimit = -1

// Machine executes a validated Definition against input strings.
// The Definition is read-only, so a single Machine may serve concurrent runs;
// each call to Run owns its tape and trace.
type Machine struct {
	def    *domain.Definition
	logger *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger for per-run debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMachine creates an engine bound to def.
func NewMachine(def *domain.Definition, opts ...Option) *Machine {
	m := &Machine{
		def:    def,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes the machine on input until no transition applies or the step
// limit is reached. maxSteps bounds the number of applied transitions;
// NoStepLimit means unbounded. The limit is checked before each lookup, so
// maxSteps = 0 halts right after the initial configuration with the sentinel
// marker appended and zero transitions applied.
//
// A run never fails on account of the input's content; the only possible
// error is an invalid move direction surfacing from the tape.
func (m *Machine) Run(input string, maxSteps int) (*domain.RunResult, error) {
	tape := NewTape(m.def.Blank())
	tape.LoadInput(input)

	state := m.def.InitialState()
	steps := 0
	ids := []string{formatID(tape, state)}

	m.logger.Debug("run started", "input", input, "initial_state", state)

	for {
		if maxSteps != NoStepLimit && steps >= maxSteps {
			ids = append(ids, domain.StepLimitMarker)
			m.logger.Debug("run halted by step limit", "steps", steps)
			break
		}

		symbol := tape.Read()
		transition, ok := m.def.Transition(state, symbol)
		if !ok {
			// No transition defined: the normal halting condition.
			break
		}

		tape.Write(transition.Write)
		if err := tape.Move(transition.Move); err != nil {
			return nil, err
		}
		state = transition.Next

		ids = append(ids, formatID(tape, state))
		steps++
	}

	result := &domain.RunResult{
		Input:      input,
		Accepted:   m.def.Accepts(state),
		FinalState: state,
		FinalTape:  tape.Contents(),
		IDs:        ids,
		Steps:      steps,
	}
	m.logger.Debug("run finished",
		"input", input,
		"accepted", result.Accepted,
		"final_state", result.FinalState,
		"steps", result.Steps,
	)
	return result, nil
}

// formatID renders an instantaneous description: the tape view concatenated,
// with the state name in brackets immediately before the head symbol.
// Example: state q0, view [a a b b], head 0 -> "[q0]aabb".
func formatID(tape *Tape, state string) string {
	symbols, head := tape.View()
	var sb strings.Builder
	for i, sym := range symbols {
		if i == head {
			sb.WriteString("[")
			sb.WriteString(state)
			sb.WriteString("]")
		}
		sb.WriteString(sym)
	}
	return sb.String()
}
