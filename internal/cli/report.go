package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cinta/internal/presentation/tui"
	"github.com/aretw0/cinta/pkg/domain"
)

// buildReport assembles a markdown summary of a batch of runs.
func buildReport(results []*domain.RunResult) string {
	var sb strings.Builder
	sb.WriteString("# Simulation summary\n\n")

	accepted := 0
	for _, r := range results {
		if r.Accepted {
			accepted++
		}
	}
	sb.WriteString(fmt.Sprintf("%d inputs, %d accepted, %d rejected.\n\n", len(results), accepted, len(results)-accepted))

	sb.WriteString("| Input | Verdict | Final state | Final tape | Steps |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| `%q` | %s | %s | `%q` | %d |\n",
			r.Input, r.Verdict(), r.FinalState, r.FinalTape, r.Steps))
	}
	return sb.String()
}

// writeReport prints the summary, rendered through glamour on terminals and
// as raw markdown everywhere else.
func writeReport(out io.Writer, results []*domain.RunResult) error {
	report := buildReport(results)

	if isTerminal(out) {
		render := tui.NewRenderer()
		rendered, err := render(report)
		if err == nil {
			report = rendered
		}
	}

	_, err := fmt.Fprintln(out, report)
	return err
}
