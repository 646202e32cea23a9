package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/eventbus"
	"riderdir/internal/ui/state"
)

// ToastExpiredMsg is sent once a toast's display time has passed
type ToastExpiredMsg time.Time

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	toastTTL time.Duration
	now      func() time.Time
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, toastTTL time.Duration) *EventHandler {
	return &EventHandler{
		state:    appState,
		toastTTL: toastTTL,
		now:      time.Now,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NotificationEvent:
		h.state.ShowToast(e.Level, e.Message, h.now(), h.toastTTL)
		return tea.Tick(h.toastTTL, func(t time.Time) tea.Msg {
			return ToastExpiredMsg(t)
		})

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
	}

	return nil
}

// HandleToastExpired clears the toast if its time is up. A newer toast
// shown in the meantime keeps its own deadline.
func (h *EventHandler) HandleToastExpired(msg ToastExpiredMsg) {
	h.state.ClearExpiredToast(time.Time(msg))
}
