package events

// ActionFailedEventType is the event type identifier.
const ActionFailedEventType = "ACTION_FAILED"

// Failure reasons carried by ActionFailed events.
const (
	ReasonInsufficientFunds  = "insufficient_funds"
	ReasonMissingEntity      = "missing_entity"
	ReasonInsufficientStock  = "insufficient_stock"
	ReasonUnderwritingDenied = "underwriting_denied"
	ReasonInvalidPayload     = "invalid_payload"
)

// ActionFailed records a reportable validation failure. Failure is a fact in
// the log like any success, so it replays and audits the same way.
type ActionFailed struct {
	Action  string
	Reason  string
	Details map[string]string
}

// BuildActionFailed creates a new ActionFailed event.
func BuildActionFailed(action string, reason string, details map[string]string) ActionFailed {
	if details == nil {
		details = map[string]string{}
	}

	return ActionFailed{
		Action:  action,
		Reason:  reason,
		Details: details,
	}
}

// EventType returns the event type identifier.
func (e ActionFailed) EventType() string {
	return ActionFailedEventType
}
