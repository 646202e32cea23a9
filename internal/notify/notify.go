package notify

import (
	"log"

	"riderdir/internal/domain"
	"riderdir/internal/eventbus"
)

// Messages shown to the user when directory operations complete
const (
	MsgDeleteSuccess = "Rider deleted successfully."
	MsgDeleteError   = "Error deleting rider. Please try again."
	MsgListError     = "Error retrieving riders. Please try again."
	MsgSearchError   = "Error searching riders. Please try again."
)

// Notifier signals the outcome of a completed operation to the user.
// Implementations decide how the message is presented.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// BusNotifier publishes notifications on the event bus
type BusNotifier struct {
	bus eventbus.EventBus
}

// NewBusNotifier creates a notifier backed by the event bus
func NewBusNotifier(bus eventbus.EventBus) *BusNotifier {
	return &BusNotifier{bus: bus}
}

func (n *BusNotifier) Success(message string) {
	n.publish(domain.NotificationSuccess, message)
}

func (n *BusNotifier) Error(message string) {
	n.publish(domain.NotificationError, message)
}

func (n *BusNotifier) publish(level domain.NotificationLevel, message string) {
	if n.bus == nil {
		log.Printf("Notification (%s) without bus: %s", level, message)
		return
	}
	n.bus.Publish(eventbus.NotificationEvent{Level: level, Message: message})
}
