package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"

	"riderdir/internal/config"
	"riderdir/internal/ui/input/keys"
	"riderdir/internal/ui/state"
	"riderdir/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state        *state.AppState
	config       *config.Config
	width        int
	height       int
	help         help.Model
	keys         keys.KeyMap
	spinner      string
	deleteTarget string
	inputMode    string
	prompt       string
	textInput    string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, km keys.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		keys:   km,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetDeleteTarget sets the rider awaiting delete confirmation
func (vm *ViewModel) SetDeleteTarget(target string) {
	vm.deleteTarget = target
}

// SetTextInput sets the active text mode, its prompt and rendered input.
// An empty mode means no text input is active.
func (vm *ViewModel) SetTextInput(mode, prompt, rendered string) {
	vm.inputMode = mode
	vm.prompt = prompt
	vm.textInput = rendered
}

// BuildViewState creates a ViewState for rendering at now
func (vm *ViewModel) BuildViewState(now time.Time) views.ViewState {
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		BaseURL:         vm.config.BaseURL,
		Records:         vm.state.Records,
		SelectedIndex:   vm.state.SelectedIndex,
		DeletingIDs:     vm.state.DeletingIDs,
		Page:            vm.state.Page,
		SearchQuery:     vm.state.SearchQuery,
		IsLoading:       vm.state.IsLoading,
		PendingDeletes:  vm.state.PendingDeletes,
		Spinner:         vm.spinner,
		ShowImageColumn: vm.config.UISettings.ShowImageColumn,
		StatusMessage:   vm.state.StatusMessage,
		ShowHelp:        vm.state.ShowHelp,
		HelpModel:       vm.help,
		Keys:            vm.keys,
		ShowInfo:        vm.state.ShowInfo,
		InfoContent:     vm.state.InfoContent,
		DeleteTarget:    vm.deleteTarget,
		InputMode:       vm.inputMode,
		Prompt:          vm.prompt,
		TextInput:       vm.textInput,
	}

	if vm.state.Toast.Visible(now) {
		vs.ToastLevel = vm.state.Toast.Level
		vs.ToastMessage = vm.state.Toast.Message
	}

	return vs
}
