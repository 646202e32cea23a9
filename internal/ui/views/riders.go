package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"riderdir/internal/domain"
)

// RiderTable renders a page of riders
type RiderTable struct {
	styles *Styles
}

// NewRiderTable creates a new rider table renderer
func NewRiderTable(styles *Styles) *RiderTable {
	return &RiderTable{styles: styles}
}

// Headers returns the column titles, in display order
func Headers(showImage bool) []string {
	headers := []string{"Id", "Name", "Email", "Position", "Status", "NRIC"}
	if showImage {
		headers = append(headers, "Image")
	}
	return headers
}

// Row returns the cells of one rider, in the order of Headers
func Row(r domain.Rider, showImage bool) []string {
	row := []string{r.RiderID, r.Name, r.Email, r.Position, r.StatusLabel(), r.NRIC}
	if showImage {
		row = append(row, r.ImageURL)
	}
	return row
}

// Render draws the table. Rows with a delete in flight are struck through.
func (t *RiderTable) Render(riders []domain.Rider, selected int, deleting map[string]bool, showImage bool, width int) string {
	rows := make([][]string, 0, len(riders))
	for _, r := range riders {
		rows = append(rows, Row(r, showImage))
	}
	statusCol := 4

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.Border).
		Headers(Headers(showImage)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.styles.Header
			}
			style := t.styles.Cell
			if row < 0 || row >= len(riders) {
				return style
			}
			if col == statusCol {
				if riders[row].Status {
					style = style.Inherit(t.styles.Active)
				} else {
					style = style.Inherit(t.styles.Inactive)
				}
			}
			if deleting[riders[row].ID] {
				style = style.Inherit(t.styles.Deleting)
			}
			if row == selected {
				style = style.Inherit(t.styles.SelectionBg)
			}
			return style
		})

	if width > 0 {
		tbl = tbl.Width(width)
	}
	return tbl.Render()
}
