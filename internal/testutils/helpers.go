// Package testutils provides shared helpers for cinta test suites.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/dsl"
	"github.com/stretchr/testify/require"
)

// WriteMachineFile writes a machine document into a temp dir and returns its
// path. The extension controls the codec the loader picks.
func WriteMachineFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write machine file")
	return path
}

// AcceptOneA builds the canonical single-transition machine: states {q0, qf},
// tape alphabet {a, B}, one rule (q0, a) -> (qf, a, S).
func AcceptOneA(t *testing.T) *domain.Definition {
	t.Helper()

	def, err := dsl.NewMachine("accept-one-a").
		States("q0", "qf").
		InputAlphabet("a").
		TapeAlphabet("a", "B").
		Initial("q0").
		Accept("qf").
		Rule("q0", "a", "a", "S", "qf").
		Build()
	require.NoError(t, err, "failed to build test machine")
	return def
}

// Spinner builds a machine that never halts on input "a": it rewrites the
// same cell forever. Used to exercise the step limit.
func Spinner(t *testing.T) *domain.Definition {
	t.Helper()

	def, err := dsl.NewMachine("spinner").
		States("q0").
		InputAlphabet("a").
		TapeAlphabet("a", "B").
		Initial("q0").
		Rule("q0", "a", "a", "S", "q0").
		Build()
	require.NoError(t, err, "failed to build spinner machine")
	return def
}
