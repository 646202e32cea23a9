package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/api"
	"riderdir/internal/config"
	"riderdir/internal/eventbus"
	"riderdir/internal/notify"
	"riderdir/internal/ui/commands"
	"riderdir/internal/ui/handlers"
	"riderdir/internal/ui/input"
	inputtypes "riderdir/internal/ui/input/types"
	"riderdir/internal/ui/logic"
	"riderdir/internal/ui/state"
	"riderdir/internal/ui/viewmodels"
	"riderdir/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized state
	baseURL string

	// UI-specific state not in AppState
	width         int
	height        int
	help          help.Model
	spinner       spinner.Model
	spinnerActive bool
	inPagerMode   bool // tracks if we're currently in pager mode
	ready         bool // first read has resolved

	// Handlers
	directory    *logic.Directory       // directory transitions
	navigator    *logic.Navigator       // row navigation
	renderer     *views.Renderer        // view renderer
	viewModel    *viewmodels.ViewModel  // view model for rendering
	eventHandler *handlers.EventHandler // event processing handler
	inputHandler *input.Handler         // input handling
	pager        *Pager                 // ov pager
	program      *tea.Program           // program reference for terminal management
	notifier     notify.Notifier        // delivers operation outcomes
}

// NewModel creates a new UI model. Remote calls made by the model are
// bound to ctx and go through client.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, client api.RiderClient, notifier notify.Notifier) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		baseURL:      cfg.BaseURL,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(),
		notifier:     notifier,
	}

	exec := commands.NewExecutor(ctx, appState, client)
	m.directory = logic.NewDirectory(appState, exec, notifier)
	m.eventHandler = handlers.NewEventHandler(appState, cfg.ToastDuration())
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler.Keys())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init loads the first page
func (m *Model) Init() tea.Cmd {
	return m.directory.Mount()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Popups take keys first
		if m.state.ShowInfo {
			switch msg.String() {
			case "esc", "q", "e", "i", "enter":
				m.state.ShowInfo = false
				m.state.InfoContent = ""
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "q", "?":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:          m.state,
			RequireConfirm: m.config.UISettings.ConfirmDelete,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if spin := m.ensureSpinner(); spin != nil {
			cmds = append(cmds, spin)
		}

		return m, tea.Batch(cmds...)

	default:
		// Non-keyboard messages may also drive the text input cursor
		cmd := m.inputHandler.Update(msg)
		model, msgCmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, msgCmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetDeleteTarget("")
	m.viewModel.SetTextInput("", "", "")

	switch m.inputHandler.GetMode() {
	case inputtypes.ModeSearch:
		rendered := ""
		if ti := m.inputHandler.TextInput(); ti != nil {
			rendered = ti.View()
		}
		m.viewModel.SetTextInput("search", m.inputHandler.Prompt(), rendered)
	case inputtypes.ModeDeleteConfirm:
		m.viewModel.SetDeleteTarget(m.inputHandler.ConfirmTarget())
	}

	return m.renderer.Render(m.viewModel.BuildViewState(time.Now()))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.UpdateState(m.state.SelectedIndex, len(m.state.Records))
		m.state.SelectedIndex = m.navigator.Navigate(a.Direction)
		return nil

	case inputtypes.NextPageAction:
		m.state.SelectedIndex = 0
		return m.directory.NextPage()

	case inputtypes.PreviousPageAction:
		cmd := m.directory.PreviousPage()
		if cmd != nil {
			m.state.SelectedIndex = 0
		}
		return cmd

	case inputtypes.ReloadAction:
		return m.directory.Reload()

	case inputtypes.DeleteAction:
		return m.directory.Delete(a.ID)

	case inputtypes.UpdateTextAction:
		if a.Text == m.state.SearchQuery {
			return nil
		}
		return m.directory.ChangeSearch(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode != inputtypes.ModeSearch {
			return nil
		}
		if a.Text != m.state.SearchQuery {
			return m.directory.ChangeSearch(a.Text)
		}
		return m.directory.SubmitSearch()

	case inputtypes.CancelTextAction:
		// The search text stays; leaving the box is not a new search
		return nil

	case inputtypes.ShowInfoAction:
		rider, ok := m.state.SelectedRider()
		if !ok {
			return nil
		}
		m.state.InfoContent = views.RenderInfo(rider, m.baseURL)
		m.state.ShowInfo = true
		return nil

	case inputtypes.ViewPageAction:
		snapshot := m.state.Snapshot()
		return m.runPager("page", func() error {
			return m.pager.ShowRiders(snapshot.Records)
		})

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		return nil

	case inputtypes.HelpPagerAction:
		return m.runPager("help", func() error {
			return m.pager.ShowText(renderHelpText())
		})

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.RidersFetchedMsg:
		m.directory.HandleFetched(msg)
		m.markReady()
		return m, nil

	case commands.RiderDeletedMsg:
		m.directory.HandleDeleted(msg)
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ToastExpiredMsg:
		m.eventHandler.HandleToastExpired(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.state.IsLoading {
			m.spinnerActive = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			m.state.StatusMessage = fmt.Sprintf("Could not open %s pager", msg.what)
			return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	return m, nil
}

// runPager returns a command that hands the terminal to the pager
func (m *Model) runPager(what string, show func() error) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return pagerMsg{what: what, err: fmt.Errorf("program not set")}
		}
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := show()
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// ensureSpinner starts the spinner tick loop when a delete is in flight
func (m *Model) ensureSpinner() tea.Cmd {
	if !m.state.IsLoading || m.spinnerActive {
		return nil
	}
	m.spinnerActive = true
	return m.spinner.Tick
}

// markReady publishes AppReady once the first read has resolved
func (m *Model) markReady() {
	if m.ready {
		return
	}
	m.ready = true
	if m.bus != nil {
		m.bus.Publish(eventbus.AppReadyEvent{})
	}
}
