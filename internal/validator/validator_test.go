package validator_test

import (
	"testing"

	"github.com/aretw0/cinta/internal/validator"
	"github.com/aretw0/cinta/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingKinds(findings []validator.Finding) []string {
	kinds := make([]string, len(findings))
	for i, f := range findings {
		kinds[i] = f.Kind
	}
	return kinds
}

func TestLint_CleanMachine(t *testing.T) {
	def, err := dsl.NewMachine("clean").
		States("q0", "qf").
		TapeAlphabet("a", "B").
		Initial("q0").
		Accept("qf").
		Rule("q0", "a", "a", "S", "qf").
		Build()
	require.NoError(t, err)

	assert.Empty(t, validator.Lint(def))
}

func TestLint_UndefinedNextState(t *testing.T) {
	// State references in transitions are not fatal at construction, only
	// alphabet membership is. The linter catches them.
	def, err := dsl.NewMachine("dangling").
		States("q0").
		TapeAlphabet("a", "B").
		Initial("q0").
		Rule("q0", "a", "a", "R", "ghost").
		Build()
	require.NoError(t, err)

	findings := validator.Lint(def)
	assert.Contains(t, findingKinds(findings), "undefined_next")
}

func TestLint_UnreachableState(t *testing.T) {
	def, err := dsl.NewMachine("island").
		States("q0", "q1", "orphan").
		TapeAlphabet("a", "B").
		Initial("q0").
		Rule("q0", "a", "a", "R", "q1").
		Rule("orphan", "a", "a", "S", "orphan").
		Build()
	require.NoError(t, err)

	findings := validator.Lint(def)
	kinds := findingKinds(findings)
	assert.Contains(t, kinds, "unreachable_state")

	found := false
	for _, f := range findings {
		if f.Kind == "unreachable_state" {
			assert.Contains(t, f.Detail, `"orphan"`)
			found = true
		}
	}
	assert.True(t, found)
}

func TestLint_FindingString(t *testing.T) {
	f := validator.Finding{Kind: "undefined_next", Detail: "something"}
	assert.Equal(t, "undefined_next: something", f.String())
}
