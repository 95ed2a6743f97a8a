// Package validator lints machine definitions beyond the fatal construction
// invariants: it crawls the transition table and reports findings that are
// legal but almost certainly mistakes.
package validator

import (
	"fmt"

	"github.com/aretw0/cinta/pkg/domain"
)

// Finding is a non-fatal lint result.
type Finding struct {
	Kind   string // "undefined_next", "unreachable_state", "unused_accept"
	Detail string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Lint inspects a validated definition and returns findings in a
// deterministic order.
func Lint(def *domain.Definition) []Finding {
	var findings []Finding
	table := def.Table()

	// 1. Transitions pointing at undeclared states. Construction does not
	// reject these (only alphabet membership is fatal), so surface them here.
	seenNext := make(map[string]bool)
	for _, entry := range table {
		if !def.HasState(entry.State) && !seenNext["src:"+entry.State] {
			seenNext["src:"+entry.State] = true
			findings = append(findings, Finding{
				Kind:   "undefined_state",
				Detail: fmt.Sprintf("transition source %q is not a declared state", entry.State),
			})
		}
		if !def.HasState(entry.To.Next) && !seenNext["dst:"+entry.To.Next] {
			seenNext["dst:"+entry.To.Next] = true
			findings = append(findings, Finding{
				Kind:   "undefined_next",
				Detail: fmt.Sprintf("transition target %q is not a declared state", entry.To.Next),
			})
		}
	}

	// 2. States unreachable from the initial state via the transition graph.
	reachable := map[string]bool{def.InitialState(): true}
	queue := []string{def.InitialState()}
	edges := make(map[string][]string)
	for _, entry := range table {
		edges[entry.State] = append(edges[entry.State], entry.To.Next)
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range edges[current] {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, state := range def.States() {
		if !reachable[state] {
			findings = append(findings, Finding{
				Kind:   "unreachable_state",
				Detail: fmt.Sprintf("state %q cannot be reached from %q", state, def.InitialState()),
			})
		}
	}

	// 3. Accept states that are unreachable are flagged above already; an
	// accept state with outgoing transitions is fine (acceptance is checked
	// only at halt), so nothing further to lint there.

	return findings
}
