package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/ui/input/types"
)

type ConfirmMode struct {
	riderID   string
	riderName string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target returns the name of the rider awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.riderName
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Pin the rider when entering so a list refresh cannot change the target
	m.riderID = ctx.CurrentRiderID()
	m.riderName = ctx.CurrentRiderName()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.riderID = ""
	m.riderName = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		actions := []types.Action{}
		if m.riderID != "" {
			actions = append(actions, types.DeleteAction{ID: m.riderID})
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true
	}

	return nil, false
}
