package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/ui/input/keys"
	"riderdir/internal/ui/input/types"
)

type NormalMode struct {
	keys        keys.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// gg needs two presses within the timeout; anything else cancels the prefix
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case msg.String() == "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.NextPage):
		return []types.Action{types.NextPageAction{}}, true

	case key.Matches(msg, m.keys.PrevPage):
		// Previous is disabled on the first page
		if ctx.Page() <= 1 {
			return nil, true
		}
		return []types.Action{types.PreviousPageAction{}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case key.Matches(msg, m.keys.Delete):
		id := ctx.CurrentRiderID()
		if id == "" {
			return nil, true
		}
		if ctx.ConfirmDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return []types.Action{types.DeleteAction{ID: id}}, true

	case key.Matches(msg, m.keys.Info):
		if ctx.CurrentRiderID() == "" {
			return nil, true
		}
		return []types.Action{types.ShowInfoAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.ViewPage):
		return []types.Action{types.ViewPageAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPage):
		return []types.Action{types.HelpPagerAction{}}, true

	case msg.String() == "esc":
		return nil, true
	}

	return nil, false
}
