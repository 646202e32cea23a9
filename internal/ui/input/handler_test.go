package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riderdir/internal/domain"
	"riderdir/internal/ui/input/types"
	"riderdir/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext() *ModelContext {
	st := state.NewAppState()
	st.SetRecords([]domain.Rider{{ID: "a1", Name: "Alice"}, {ID: "a2", Name: "Bob"}})
	return &ModelContext{State: st}
}

func TestNormalModeNavigationAndPaging(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	assert.Equal(t, []types.Action{types.NextPageAction{}}, actions)

	actions, _ = h.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)
}

func TestPreviousPageDisabledOnFirstPage(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("p"), ctx)
	assert.Empty(t, actions)

	ctx.State.SetPage(2)
	actions, _ = h.HandleKey(runes("p"), ctx)
	assert.Equal(t, []types.Action{types.PreviousPageAction{}}, actions)
}

func TestDoubleGGoesToTop(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.SelectedIndex = 1

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Equal(t, []types.Action{types.DeleteAction{ID: "a2"}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestDeleteOnEmptyPageDoesNothing(t *testing.T) {
	h := New()
	ctx := &ModelContext{State: state.NewAppState()}

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
}

func TestDeleteConfirmation(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.RequireConfirm = true

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
	require.Equal(t, types.ModeDeleteConfirm, h.GetMode())
	assert.Equal(t, "Alice", h.ConfirmTarget())

	// a refresh moving the selection does not change the pinned target
	ctx.State.SelectedIndex = 1
	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.DeleteAction{ID: "a1"}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestDeleteConfirmationCancelled(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.RequireConfirm = true

	h.HandleKey(runes("d"), ctx)
	actions, _ := h.HandleKey(runes("n"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestSearchModeReportsEveryChange(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.SetSearchQuery("Al")

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.GetMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Al", h.TextInput().Value(), "search starts from the current query")
	assert.Equal(t, "Search by Name: ", h.Prompt())

	actions, _ := h.HandleKey(runes("i"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Ali"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "Ali", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeEscapeKeepsQuery(t *testing.T) {
	h := New()
	ctx := newContext()

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestQuitKeys(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}
