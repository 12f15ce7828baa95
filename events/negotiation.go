package events

// NegotiationRequestedEventType is the event type identifier.
const NegotiationRequestedEventType = "NEGOTIATION_REQUESTED"

// NegotiationRequested records an agent asking a vendor for a better price.
// The actual attempt happens in a reaction, since the outcome depends on the
// vendor relationship outside the issuing aggregate.
type NegotiationRequested struct {
	VendorID string
	Item     string
}

// BuildNegotiationRequested creates a new NegotiationRequested event.
func BuildNegotiationRequested(vendorID string, item string) NegotiationRequested {
	return NegotiationRequested{
		VendorID: vendorID,
		Item:     item,
	}
}

// EventType returns the event type identifier.
func (e NegotiationRequested) EventType() string {
	return NegotiationRequestedEventType
}

// NegotiationAttemptedEventType is the event type identifier.
const NegotiationAttemptedEventType = "NEGOTIATION_ATTEMPTED"

// NegotiationAttempted records that a negotiation round actually took place.
type NegotiationAttempted struct {
	VendorID string
	Item     string
	Tick     int
}

// BuildNegotiationAttempted creates a new NegotiationAttempted event.
func BuildNegotiationAttempted(vendorID string, item string, tick int) NegotiationAttempted {
	return NegotiationAttempted{
		VendorID: vendorID,
		Item:     item,
		Tick:     tick,
	}
}

// EventType returns the event type identifier.
func (e NegotiationAttempted) EventType() string {
	return NegotiationAttemptedEventType
}

// VendorNegotiationOutcomeEventType is the event type identifier.
const VendorNegotiationOutcomeEventType = "VENDOR_NEGOTIATION_OUTCOME"

// VendorNegotiationOutcome records the vendor's answer, including the price
// multiplier the agent obtained (1.0 means no discount).
type VendorNegotiationOutcome struct {
	VendorID   string
	Item       string
	Success    bool
	Multiplier float64
	Message    string
}

// BuildVendorNegotiationOutcome creates a new VendorNegotiationOutcome event.
func BuildVendorNegotiationOutcome(vendorID string, item string, success bool, multiplier float64, message string) VendorNegotiationOutcome {
	return VendorNegotiationOutcome{
		VendorID:   vendorID,
		Item:       item,
		Success:    success,
		Multiplier: multiplier,
		Message:    message,
	}
}

// EventType returns the event type identifier.
func (e VendorNegotiationOutcome) EventType() string {
	return VendorNegotiationOutcomeEventType
}

// MessageSentEventType is the event type identifier.
const MessageSentEventType = "MESSAGE_SENT"

// MessageSent records a notification delivered to an agent's inbox.
type MessageSent struct {
	Recipient string
	Content   string
	Tick      int
}

// BuildMessageSent creates a new MessageSent event.
func BuildMessageSent(recipient string, content string, tick int) MessageSent {
	return MessageSent{
		Recipient: recipient,
		Content:   content,
		Tick:      tick,
	}
}

// EventType returns the event type identifier.
func (e MessageSent) EventType() string {
	return MessageSentEventType
}
