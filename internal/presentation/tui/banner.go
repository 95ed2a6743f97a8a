package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for cinta.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Teal/Indigo)
	s1 := termenv.String("        _       _        ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("   ___ (_)_ __ | |_ __ _ ").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String("  / __|| | '_ \\| __/ _` |").Foreground(p.Color("#60a5fa"))
	s4 := termenv.String(" | (__ | | | | | || (_| |").Foreground(p.Color("#818cf8"))
	s5 := termenv.String("  \\___||_|_| |_|\\__\\__,_|").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}

// Verdict colorizes an acceptance verdict for terminal output.
func Verdict(accepted bool) string {
	p := termenv.ColorProfile()
	if accepted {
		return termenv.String("ACCEPTED").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("REJECTED").Foreground(p.Color("#ef4444")).Bold().String()
}
