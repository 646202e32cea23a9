package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Search        lipgloss.Style
	InfoBox       lipgloss.Style
	HelpBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Header        lipgloss.Style
	Cell          lipgloss.Style
	Border        lipgloss.Style
	SelectionBg   lipgloss.Style
	Deleting      lipgloss.Style
	Active        lipgloss.Style
	Inactive      lipgloss.Style
	Button        lipgloss.Style
	ButtonOff     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Search:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(64).
			BorderForeground(lipgloss.Color("241")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1),
		Cell:          lipgloss.NewStyle().Padding(0, 1),
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Deleting:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Active:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Inactive:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		ButtonOff:     lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
