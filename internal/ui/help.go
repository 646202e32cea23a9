package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move between riders"},
		{"gg/G", "First/last rider on the page"},
	}},
	{"Pages", []helpEntry{
		{"n, l, →, PgDn", "Next page"},
		{"p, h, ←, PgUp", "Previous page (not on page 1)"},
		{"r", "Reload the last list or search"},
	}},
	{"Search", []helpEntry{
		{"/", "Search by name; results update as you type"},
		{"Enter", "Search again with the current text"},
		{"Esc", "Leave the search box, keeping the text"},
	}},
	{"Riders", []helpEntry{
		{"d, Delete", "Delete the selected rider"},
		{"e, i, Enter", "Show details and the edit link"},
		{"v", "View the current page as JSON"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle help"},
		{"H", "Open this help in a pager"},
		{"q, Ctrl+C", "Quit"},
	}},
}

// renderHelpText renders the long-form help shown in the pager
func renderHelpText() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			if w := lipgloss.Width(e.keys); w > width {
				width = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Rider App Help"))
	help.WriteString("\n")

	for _, s := range helpSections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(e.keys), pad, descStyle.Render(e.desc)))
		}
	}

	return help.String()
}
