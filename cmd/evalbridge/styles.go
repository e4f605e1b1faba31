package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for terminal output.
var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	errorPrefix  = errorStyle.Bold(true).Render("error:")
)
