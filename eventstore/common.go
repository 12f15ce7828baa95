package eventstore

import (
	"errors"
)

var ErrNilBusSupplied = errors.New("nil bus supplied")
var ErrEmptyAgentIDSupplied = errors.New("empty agent id supplied")
var ErrEmptyEventTypeSupplied = errors.New("empty event type supplied")
var ErrNilSubscriberSupplied = errors.New("nil subscriber supplied")

// AgentIDString is a type alias for string, identifying the aggregate an
// event belongs to.
type AgentIDString = string

// GlobalSequenceUint is a type alias for uint64, the position of an event on
// the global tape. Assigned by the store on append, starting at 1.
type GlobalSequenceUint = uint64
