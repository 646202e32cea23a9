package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Pagination actions
type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PreviousPageAction struct{}

func (a PreviousPageAction) Type() string { return "previous_page" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Rider actions
type DeleteAction struct {
	ID string
}

func (a DeleteAction) Type() string { return "delete" }

type ShowInfoAction struct{}

func (a ShowInfoAction) Type() string { return "show_info" }

type ViewPageAction struct{}

func (a ViewPageAction) Type() string { return "view_page" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type HelpPagerAction struct{}

func (a HelpPagerAction) Type() string { return "help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
