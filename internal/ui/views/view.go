package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"riderdir/internal/domain"
	"riderdir/internal/ui/input/keys"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	BaseURL         string
	Records         []domain.Rider
	SelectedIndex   int
	DeletingIDs     map[string]bool
	Page            int
	SearchQuery     string
	IsLoading       bool
	PendingDeletes  int
	Spinner         string
	ShowImageColumn bool
	StatusMessage   string
	ToastLevel      domain.NotificationLevel
	ToastMessage    string
	ShowHelp        bool
	HelpModel       help.Model
	Keys            keys.KeyMap
	ShowInfo        bool
	InfoContent     string
	DeleteTarget    string
	InputMode       string
	Prompt          string
	TextInput       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	table       *RiderTable
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		table:       NewRiderTable(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopup(state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelpContent(state), state.Height, state.Width, r.styles.HelpBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Add Riders: %s/add", state.BaseURL)))
	content.WriteString("\n\n")
	content.WriteString(r.styles.Subtitle.Render("All Riders"))
	content.WriteString("\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n\n")

	if len(state.Records) == 0 {
		content.WriteString(r.styles.Dim.Render("No riders on this page."))
	} else {
		tableWidth := 0
		if state.Width > 4 {
			tableWidth = state.Width - 4 // Main container padding
		}
		content.WriteString(r.table.Render(state.Records, state.SelectedIndex, state.DeletingIDs, state.ShowImageColumn, tableWidth))
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderPager(state))
	content.WriteString("\n")

	if state.DeleteTarget != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete rider '%s'? (y/n): ", state.DeleteTarget)))
	} else if state.ToastMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.renderToast(state))
	} else if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.StatusLoading.Render(state.StatusMessage))
	}

	helpText := r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Keys.ShortHelp()))

	// Push help to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with a right-aligned delete indicator
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("Rider App")
	if !state.IsLoading {
		return logo
	}

	indicator := r.styles.Dim.Render(fmt.Sprintf("%s Deleting %d", state.Spinner, state.PendingDeletes))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(indicator)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + indicator
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	if state.InputMode == "search" {
		return state.Prompt + state.TextInput
	}
	if state.SearchQuery == "" {
		return r.styles.Dim.Render("Search by Name (press /)")
	}
	return r.styles.Search.Render(fmt.Sprintf("Search by Name: %s", state.SearchQuery))
}

// renderPager renders the Previous / Page N / Next footer
func (r *Renderer) renderPager(state ViewState) string {
	prev := r.styles.Button.Render("Previous Page")
	if state.Page <= 1 {
		prev = r.styles.ButtonOff.Render("Previous Page")
	}
	next := r.styles.Button.Render("Next Page")
	return fmt.Sprintf("%s  |  Page %d  |  %s", prev, state.Page, next)
}

func (r *Renderer) renderToast(state ViewState) string {
	if state.ToastLevel == domain.NotificationError {
		return r.styles.StatusError.Render("✗ " + state.ToastMessage)
	}
	return r.styles.StatusSuccess.Render("✓ " + state.ToastMessage)
}

// renderHelpContent renders the key bindings
func (r *Renderer) renderHelpContent(state ViewState) string {
	h := state.HelpModel
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Rider App Help"))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(state.Keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("In search: type to search, Enter to search again, Esc to leave"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Press ? or Esc to close"))
	return b.String()
}

// RenderInfo renders the detail popup for one rider
func RenderInfo(rider domain.Rider, baseURL string) string {
	styles := NewStyles()
	var b strings.Builder
	b.WriteString(styles.Title.Render(rider.Name))
	b.WriteString("\n\n")

	headers := Headers(true)
	row := Row(rider, true)
	for i, h := range headers {
		b.WriteString(fmt.Sprintf("%-10s %s\n", h+":", row[i]))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Edit:", baseURL+rider.EditPath()))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("Press Esc to close"))
	return b.String()
}
