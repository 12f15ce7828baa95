package eventstore

import (
	"sync"
)

// MemoryStore is the append-only event log: one ordered log per agent plus a
// global tape of all events across agents. It is the single point through
// which every event must pass before it becomes visible to the rest of the
// system.
//
// Save appends first and publishes to the Bus strictly afterwards, so
// subscribers are guaranteed the event is already durable-in-log by the time
// they observe it.
type MemoryStore struct {
	mu               sync.RWMutex
	bus              *Bus
	agentLogs        map[AgentIDString]RecordedEvents
	globalTape       RecordedEvents
	nextSeq          GlobalSequenceUint
	logger           Logger
	metricsCollector MetricsCollector
}

// StoreOption defines a functional option for configuring a MemoryStore.
type StoreOption func(*MemoryStore) error

// WithLogger sets the logger for the MemoryStore.
func WithLogger(logger Logger) StoreOption {
	return func(s *MemoryStore) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the MemoryStore.
// The collector will receive append counts labeled by event type.
func WithMetrics(collector MetricsCollector) StoreOption {
	return func(s *MemoryStore) error {
		s.metricsCollector = collector
		return nil
	}
}

// NewMemoryStore creates a MemoryStore publishing to the given Bus.
func NewMemoryStore(bus *Bus, opts ...StoreOption) (*MemoryStore, error) {
	if bus == nil {
		return nil, ErrNilBusSupplied
	}

	store := &MemoryStore{
		bus:       bus,
		agentLogs: make(map[AgentIDString]RecordedEvents),
		nextSeq:   1,
	}

	for _, opt := range opts {
		if err := opt(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Save appends the event to the owning agent's log and the global tape, then
// publishes it to the Bus. Returns the stored envelope with its assigned
// global sequence.
func (s *MemoryStore) Save(recorded RecordedEvent) (RecordedEvent, error) {
	stored, err := s.append(recorded)
	if err != nil {
		return RecordedEvent{}, err
	}

	s.bus.Publish(stored)

	return stored, nil
}

// SaveBatch appends all events preserving the caller's ordering across the
// batch (no reordering, no deduplication), then publishes them in the same
// order.
func (s *MemoryStore) SaveBatch(recorded ...RecordedEvent) (RecordedEvents, error) {
	stored := make(RecordedEvents, 0, len(recorded))

	for _, re := range recorded {
		storedEvent, err := s.append(re)
		if err != nil {
			return nil, err
		}

		stored = append(stored, storedEvent)
	}

	for _, storedEvent := range stored {
		s.bus.Publish(storedEvent)
	}

	return stored, nil
}

// AgentLog returns a copy of the ordered event log for one agent.
func (s *MemoryStore) AgentLog(agentID AgentIDString) RecordedEvents {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.agentLogs[agentID]
	out := make(RecordedEvents, len(log))
	copy(out, log)

	return out
}

// GlobalTape returns a copy of the ordered tape of all events across agents.
// Used for cross-agent audits without merge-sorting per-agent logs.
func (s *MemoryStore) GlobalTape() RecordedEvents {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(RecordedEvents, len(s.globalTape))
	copy(out, s.globalTape)

	return out
}

// Reset discards every log and the global tape. Resetting the game means
// discarding the log, never mutating history in place.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.agentLogs = make(map[AgentIDString]RecordedEvents)
	s.globalTape = nil
	s.nextSeq = 1
}

func (s *MemoryStore) append(recorded RecordedEvent) (RecordedEvent, error) {
	if recorded.AgentID == "" {
		return RecordedEvent{}, ErrEmptyAgentIDSupplied
	}

	if recorded.EventType == "" {
		return RecordedEvent{}, ErrEmptyEventTypeSupplied
	}

	s.mu.Lock()
	recorded.GlobalSeq = s.nextSeq
	s.nextSeq++
	s.agentLogs[recorded.AgentID] = append(s.agentLogs[recorded.AgentID], recorded)
	s.globalTape = append(s.globalTape, recorded)
	s.mu.Unlock()

	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(
			"eventstore_append_total",
			map[string]string{"event_type": recorded.EventType},
		)
	}

	if s.logger != nil {
		s.logger.Debug(
			"event appended",
			"event_type", recorded.EventType,
			"agent_id", recorded.AgentID,
			"tick", recorded.Tick,
			"global_seq", recorded.GlobalSeq,
		)
	}

	return recorded, nil
}
