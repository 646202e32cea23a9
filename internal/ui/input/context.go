package input

import (
	"riderdir/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State          *state.AppState
	RequireConfirm bool // ask before deleting
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Records)
}

// CurrentRiderID returns the id of the selected rider, or "" on an empty page
func (c *ModelContext) CurrentRiderID() string {
	if r, ok := c.State.SelectedRider(); ok {
		return r.ID
	}
	return ""
}

// CurrentRiderName returns the name of the selected rider
func (c *ModelContext) CurrentRiderName() string {
	if r, ok := c.State.SelectedRider(); ok {
		return r.Name
	}
	return ""
}

// Page returns the current page number
func (c *ModelContext) Page() int {
	return c.State.Page
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}

// ConfirmDelete reports whether deletes need a y/n confirmation
func (c *ModelContext) ConfirmDelete() bool {
	return c.RequireConfirm
}
