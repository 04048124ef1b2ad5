package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	paradoxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
	guessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	solvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")).Bold(true)
)

// styleLine colors a step transcript line by rule when stdout is a real
// terminal, and passes it through unchanged otherwise (piped output,
// redirected files, CI).
func styleLine(rule, line string) string {
	if !colorEnabled {
		return line
	}
	switch rule {
	case "paradox":
		return paradoxStyle.Render(line)
	case "guess":
		return guessStyle.Render(line)
	default:
		return line
	}
}

func styleSolved(line string) string {
	if !colorEnabled {
		return line
	}
	return solvedStyle.Render(line)
}
