package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNotification EventType = "Notification"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
	EventAppReady     EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NotificationLevel is the severity of a user-facing notification
type NotificationLevel int

const (
	NotificationSuccess NotificationLevel = iota
	NotificationError
)

func (l NotificationLevel) String() string {
	if l == NotificationError {
		return "error"
	}
	return "success"
}

// NotificationEvent is emitted when an operation completes and the user should be told
type NotificationEvent struct {
	Level   NotificationLevel
	Message string
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// ErrorEvent is emitted when an error occurs outside a user operation
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the UI has performed its first render
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
