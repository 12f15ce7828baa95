package engine

import (
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/partners"
)

// NewDeliverySubscriber returns a bus observer forwarding MESSAGE_SENT events
// to the external delivery sink. Delivery lives on the bus rather than in a
// reaction so a failing sink is contained by the bus's fault isolation and
// never blocks the event log.
func NewDeliverySubscriber(notifier partners.Notifier) eventstore.Subscriber {
	return func(recorded eventstore.RecordedEvent) error {
		domainEvent, err := recorded.Domain()
		if err != nil {
			return err
		}

		message, ok := domainEvent.(events.MessageSent)
		if !ok {
			return nil
		}

		return notifier.Send(message.Recipient, message.Content, message.Tick)
	}
}
