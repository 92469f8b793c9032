package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Cursor        lipgloss.Style
	SelectionBg   lipgloss.Style
	Heading       lipgloss.Style
	Link          lipgloss.Style
	LinkTarget    lipgloss.Style
	ListItem      lipgloss.Style
	LineNumber    lipgloss.Style
	ModeVisual    lipgloss.Style
	Scroll        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:          lipgloss.NewStyle().Faint(true),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		SelectionBg: lipgloss.NewStyle().
			Background(lipgloss.Color("237")),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Underline(true),
		LinkTarget: lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("75")),
		ListItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LineNumber: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("241")),
		ModeVisual: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")),
		Scroll: lipgloss.NewStyle().Faint(true),
	}
}
