package logic

import (
	"errors"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/api"
	"riderdir/internal/domain"
	"riderdir/internal/notify"
	"riderdir/internal/ui/commands"
	"riderdir/internal/ui/state"
)

// Directory owns the transitions of the rider directory: each user action
// mutates state and issues at most one remote call, and each result message
// is reconciled against the state at the time it arrives.
type Directory struct {
	state    *state.AppState
	exec     *commands.Executor
	notifier notify.Notifier
}

// NewDirectory creates the directory controller
func NewDirectory(appState *state.AppState, exec *commands.Executor, notifier notify.Notifier) *Directory {
	return &Directory{
		state:    appState,
		exec:     exec,
		notifier: notifier,
	}
}

// Mount loads the current page with the current search query
func (d *Directory) Mount() tea.Cmd {
	return d.listCurrentPage(d.state.SearchQuery)
}

// Reload repeats the most recently issued read
func (d *Directory) Reload() tea.Cmd {
	if d.state.LastQuery.Kind == domain.FetchSearch {
		return d.exec.ExecuteSearch(d.state.LastQuery.Name)
	}
	return d.listCurrentPage(d.state.SearchQuery)
}

// NextPage advances one page. There is no upper bound; a page past the
// end of the directory comes back empty.
func (d *Directory) NextPage() tea.Cmd {
	d.state.SetPage(d.state.Page + 1)
	return d.listCurrentPage(d.state.SearchQuery)
}

// PreviousPage goes back one page. It is a no-op on the first page.
func (d *Directory) PreviousPage() tea.Cmd {
	if d.state.Page <= 1 {
		return nil
	}
	d.state.SetPage(d.state.Page - 1)
	return d.listCurrentPage(d.state.SearchQuery)
}

// ChangeSearch records a new search box value. A non-blank value searches
// by name; a blank one reloads the current page unfiltered.
func (d *Directory) ChangeSearch(value string) tea.Cmd {
	d.state.SetSearchQuery(value)
	if strings.TrimSpace(value) != "" {
		return d.exec.ExecuteSearch(value)
	}
	return d.listCurrentPage("")
}

// SubmitSearch searches for the current search box value
func (d *Directory) SubmitSearch() tea.Cmd {
	return d.exec.ExecuteSearch(d.state.SearchQuery)
}

// Delete removes the rider with the given id from the remote collection.
// A second delete of an id already in flight is ignored.
func (d *Directory) Delete(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	if d.state.DeletingIDs[id] {
		log.Printf("Delete of %s already in flight, ignoring", id)
		return nil
	}
	return d.exec.ExecuteDelete(id)
}

// DeleteSelected deletes the rider on the selected row
func (d *Directory) DeleteSelected() tea.Cmd {
	rider, ok := d.state.SelectedRider()
	if !ok {
		return nil
	}
	return d.Delete(rider.ID)
}

// HandleFetched applies a list or search result. Results of requests that
// have been superseded are discarded. It reports whether the result was applied.
func (d *Directory) HandleFetched(msg commands.RidersFetchedMsg) bool {
	if !d.state.IsCurrentFetch(msg.Seq) {
		log.Printf("Discarding stale %s result (seq %d, current %d, page %d, name %q)",
			msg.Query.Kind, msg.Seq, d.state.FetchSeq, msg.Query.Page, msg.Query.Name)
		return false
	}

	if msg.Err != nil {
		log.Printf("Error retrieving riders (%s page %d name %q): %v", msg.Query.Kind, msg.Query.Page, msg.Query.Name, msg.Err)
		var fetchErr *api.FetchError
		if errors.As(msg.Err, &fetchErr) && fetchErr.Timeout() {
			log.Printf("Request timed out: %s", fetchErr.URL)
		}
		if msg.Query.Kind == domain.FetchSearch {
			d.notifier.Error(notify.MsgSearchError)
		} else {
			d.notifier.Error(notify.MsgListError)
		}
		return false
	}

	d.state.SetRecords(msg.Riders)
	return true
}

// HandleDeleted applies a delete result
func (d *Directory) HandleDeleted(msg commands.RiderDeletedMsg) {
	d.state.EndDelete(msg.ID)

	if msg.Err != nil {
		log.Printf("Error deleting rider %s: %v", msg.ID, msg.Err)
		d.notifier.Error(notify.MsgDeleteError)
		return
	}

	if !d.state.RemoveRecord(msg.ID) {
		log.Printf("Deleted rider %s was not on the current page", msg.ID)
	}
	d.notifier.Success(notify.MsgDeleteSuccess)
}

func (d *Directory) listCurrentPage(name string) tea.Cmd {
	return d.exec.ExecuteList(d.state.Page, name)
}
