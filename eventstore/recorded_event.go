package eventstore

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/sudsim/tycoon-engine-go/events"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// ErrMappingToRecordedEventFailed is returned when domain event serialization fails.
var ErrMappingToRecordedEventFailed = errors.New("mapping to recorded event failed for domain event")

// ErrMappingToEventMetadataFailed is returned when metadata deserialization fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// RecordedEvents is an alias type for a slice of RecordedEvent.
type RecordedEvents = []RecordedEvent

// RecordedEvent is the envelope the store appends and queries back.
//
// It is built on scalars plus raw JSON so the store stays agnostic of the
// typed domain event variants. Once saved, a RecordedEvent is never mutated
// or deleted; the log for an agent is monotonically append-only.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildRecordedEvent
//   - BuildRecordedEventWithEmptyMetadata
type RecordedEvent struct {
	EventID      string
	EventType    string
	AgentID      AgentIDString
	Tick         int
	GlobalSeq    GlobalSequenceUint // assigned by the store on append
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     string
	CausationID   string
	CorrelationID string
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// BuildRecordedEvent converts a DomainEvent plus envelope scalars into a
// RecordedEvent ready to be saved.
// Returns an error if the payload or metadata cannot be serialized.
func BuildRecordedEvent(
	event events.DomainEvent,
	agentID AgentIDString,
	tick int,
	occurredAt time.Time,
	metadata EventMetadata,
) (RecordedEvent, error) {

	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailed, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailed, err)
	}

	if !json.Valid(payloadJSON) {
		return RecordedEvent{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return RecordedEvent{}, ErrInvalidMetadataJSON
	}

	return RecordedEvent{
		EventID:      uuid.NewString(),
		EventType:    event.EventType(),
		AgentID:      agentID,
		Tick:         tick,
		OccurredAt:   occurredAt.UTC().Truncate(time.Microsecond),
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildRecordedEventWithEmptyMetadata converts a DomainEvent into a
// RecordedEvent with valid empty JSON metadata.
func BuildRecordedEventWithEmptyMetadata(
	event events.DomainEvent,
	agentID AgentIDString,
	tick int,
	occurredAt time.Time,
) (RecordedEvent, error) {

	recorded, err := BuildRecordedEvent(event, agentID, tick, occurredAt, EventMetadata{})
	if err != nil {
		return RecordedEvent{}, err
	}

	recorded.MetadataJSON = []byte("{}")

	return recorded, nil
}

// Domain decodes the payload back into its typed domain event variant.
func (re RecordedEvent) Domain() (events.DomainEvent, error) {
	return events.EventFromJSON(re.EventType, re.PayloadJSON)
}

// Metadata extracts the EventMetadata from the envelope.
func (re RecordedEvent) Metadata() (EventMetadata, error) {
	metadata := new(EventMetadata)
	if err := jsoniter.ConfigFastest.Unmarshal(re.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

// DomainEventsFrom decodes a slice of recorded events into their typed
// variants, preserving order.
func DomainEventsFrom(recorded RecordedEvents) (events.DomainEvents, error) {
	domainEvents := make(events.DomainEvents, 0, len(recorded))

	for _, re := range recorded {
		domainEvent, err := re.Domain()
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}
