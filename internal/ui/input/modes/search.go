package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"riderdir/internal/ui/input/types"
)

// SearchMode edits the name filter. Every change of the value is reported
// so the directory can search as the user types; Enter searches explicitly.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search by Name: ", ti),
	}
}
