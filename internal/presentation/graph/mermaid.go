// Package graph renders a machine's transition table as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cinta/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax for the transition table.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accept states: [[Subroutine]]
// - Other states: [Rectangle]
// Edges are labeled "read / write, move". Output order is deterministic.
func GenerateMermaid(def *domain.Definition) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, state := range def.States() {
		safeID := sanitizeMermaidID(state)

		opener, closer := "[", "]"
		switch {
		case state == def.InitialState():
			opener, closer = "((", "))"
		case def.Accepts(state):
			opener, closer = "[[", "]]"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))
	}

	for _, entry := range def.Table() {
		from := sanitizeMermaidID(entry.State)
		to := sanitizeMermaidID(entry.To.Next)
		label := fmt.Sprintf("%s / %s, %s", entry.Read, entry.To.Write, entry.To.Move)
		// Escape double quotes for Mermaid labels
		label = strings.ReplaceAll(label, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", from, label, to))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
