package reaction

import (
	"fmt"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// NotificationReaction turns noteworthy financial events into inbox messages.
// It only records the MESSAGE_SENT fact; forwarding to the external delivery
// sink is a bus observer's job, so a slow or broken sink never touches the
// event log.
type NotificationReaction struct{}

// NewNotificationReaction creates the reaction.
func NewNotificationReaction() *NotificationReaction {
	return &NotificationReaction{}
}

// Name identifies the reaction in logs.
func (r *NotificationReaction) Name() string {
	return "notifications"
}

// EventTypes lists the triggering event types.
func (r *NotificationReaction) EventTypes() []string {
	return []string{
		events.BillPaidEventType,
		events.BillPenaltyAppliedEventType,
		events.LoanDefaultedEventType,
	}
}

// React composes the warning message for the triggering event.
func (r *NotificationReaction) React(event state.Event, agg *state.AggregateState) ([]Emission, error) {
	var content string

	switch e := event.Domain.(type) {
	case events.BillPaid:
		if !e.WasLate {
			return nil, nil
		}
		content = fmt.Sprintf("bill %s was paid late; expect this on your record", e.BillID)
	case events.BillPenaltyApplied:
		content = fmt.Sprintf("late penalty of %.2f added to bill %s", e.Penalty, e.BillID)
	case events.LoanDefaulted:
		content = fmt.Sprintf("loan %s is in default; your credit score took a severe hit", e.LoanID)
	default:
		return nil, nil
	}

	agentID := string(event.Recorded.AgentID)
	tick := event.Recorded.Tick

	return []Emission{
		{
			AgentID: agentID,
			Tick:    tick,
			Event:   events.BuildMessageSent(agentID, content, tick),
		},
	}, nil
}

var _ Reaction = (*NotificationReaction)(nil)
