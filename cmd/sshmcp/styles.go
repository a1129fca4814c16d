package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")). // Blue
			MarginTop(1).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Gray
			MarginLeft(2)

	passedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")). // Green
			MarginLeft(2)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")). // Red
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")).
			MarginTop(1)

	checkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true).
			MarginTop(1)

	toolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 1).
			MarginTop(1)

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
)
