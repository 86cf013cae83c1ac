package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	ModeActive lipgloss.Style
	ModeIdle   lipgloss.Style
	Timeline   lipgloss.Style
	Playhead   lipgloss.Style
	Status     lipgloss.Style
}

func defaultStyles() styles {
	s := styles{}
	s.App = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		Padding(1, 2)
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	s.ModeActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("12")).
		Padding(0, 1)
	s.ModeIdle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 1)
	s.Timeline = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
	s.Playhead = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	s.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	return s
}
