// Package engine wires the command registry, event store, projection
// registry, and reactions into one facade. An Engine instance owns its
// aggregates single-threadedly: every entry point takes the instance lock, so
// events are decided, saved, and projected strictly one at a time and
// cross-aggregate effects only travel as emitted events.
package engine

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sudsim/tycoon-engine-go/command"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
	"github.com/sudsim/tycoon-engine-go/partners"
	"github.com/sudsim/tycoon-engine-go/reaction"
	"github.com/sudsim/tycoon-engine-go/state"
)

// ErrNilVendorSupplied is returned when the vendor option is given nil.
var ErrNilVendorSupplied = errors.New("nil vendor supplied")

// ErrNilNotifierSupplied is returned when the notifier option is given nil.
var ErrNilNotifierSupplied = errors.New("nil notifier supplied")

// ErrNilLoggerSupplied is returned when a logger option is given nil.
var ErrNilLoggerSupplied = errors.New("nil logger supplied")

// Engine is the single entry point of the simulation core.
type Engine struct {
	mu sync.Mutex

	bus         *eventstore.Bus
	store       *eventstore.MemoryStore
	commands    *command.Registry
	projections *state.Registry
	reactions   map[string][]reaction.Reaction
	aggregates  map[string]*state.AggregateState
	services    command.Services

	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	notifier         partners.Notifier
	clock            func() time.Time
	cascadeLimit     int
}

// Option defines a functional option for configuring an Engine.
type Option func(*Engine) error

// WithLogger sets the operational logger, shared with the store and bus.
func WithLogger(logger eventstore.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger for the submit and cascade
// path, enabling trace correlation from the caller's context. Without this
// option the engine falls back to asserting ContextualLogger on the logger
// set via WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(e *Engine) error {
		if logger == nil {
			return ErrNilLoggerSupplied
		}

		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector, shared with the store and bus.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithVendor sets the supply vendor consulted by command handlers.
func WithVendor(vendor command.Vendor) Option {
	return func(e *Engine) error {
		if vendor == nil {
			return ErrNilVendorSupplied
		}

		e.services.Vendor = vendor
		return nil
	}
}

// WithIDGenerator overrides entity id generation, making generated ids
// deterministic in tests.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) error {
		e.services.NewID = newID
		return nil
	}
}

// WithClock overrides the envelope timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) error {
		e.clock = clock
		return nil
	}
}

// WithReactions registers follow-up policies, dispatched in the given order
// per event type.
func WithReactions(reactions ...reaction.Reaction) Option {
	return func(e *Engine) error {
		for _, rx := range reactions {
			for _, eventType := range rx.EventTypes() {
				e.reactions[eventType] = append(e.reactions[eventType], rx)
			}
		}

		return nil
	}
}

// WithNotifier subscribes the delivery observer forwarding MESSAGE_SENT
// events to the given sink.
func WithNotifier(notifier partners.Notifier) Option {
	return func(e *Engine) error {
		if notifier == nil {
			return ErrNilNotifierSupplied
		}

		e.notifier = notifier
		return nil
	}
}

// WithCascadeLimit overrides the maximum number of reaction-emitted events
// one submission may produce.
func WithCascadeLimit(limit int) Option {
	return func(e *Engine) error {
		e.cascadeLimit = limit
		return nil
	}
}

// NewEngine creates an Engine with its own bus, store, command registry, and
// projection registry. Without WithVendor a deterministic default vendor is
// used.
func NewEngine(opts ...Option) (*Engine, error) {
	commands, err := command.DefaultRegistry()
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		commands:     commands,
		projections:  state.DefaultRegistry(),
		reactions:    make(map[string][]reaction.Reaction),
		aggregates:   make(map[string]*state.AggregateState),
		clock:        time.Now,
		cascadeLimit: DefaultCascadeLimit,
		services: command.Services{
			NewID: uuid.NewString,
		},
	}

	for _, opt := range opts {
		if err := opt(engine); err != nil {
			return nil, err
		}
	}

	if engine.contextualLogger == nil {
		if contextual, ok := engine.logger.(eventstore.ContextualLogger); ok {
			engine.contextualLogger = contextual
		}
	}

	var busOpts []eventstore.BusOption
	if engine.logger != nil {
		busOpts = append(busOpts, eventstore.WithBusLogger(engine.logger))
	}

	engine.bus, err = eventstore.NewBus(busOpts...)
	if err != nil {
		return nil, err
	}

	if engine.notifier != nil {
		err = engine.bus.Subscribe(events.MessageSentEventType, NewDeliverySubscriber(engine.notifier))
		if err != nil {
			return nil, err
		}
	}

	engine.store, err = eventstore.NewMemoryStore(
		engine.bus,
		storeOptions(engine.logger, engine.metricsCollector)...,
	)
	if err != nil {
		return nil, err
	}

	if engine.services.Vendor == nil {
		engine.services.Vendor = partners.NewSupplyVendor(
			command.DefaultVendorID,
			rand.New(rand.NewSource(1)),
		)
	}

	return engine, nil
}

func storeOptions(logger eventstore.Logger, collector eventstore.MetricsCollector) []eventstore.StoreOption {
	var opts []eventstore.StoreOption

	if logger != nil {
		opts = append(opts, eventstore.WithLogger(logger))
	}

	if collector != nil {
		opts = append(opts, eventstore.WithMetrics(collector))
	}

	return opts
}

// Submit dispatches one agent action: the command handler decides the events,
// each decided event is saved, projected, and published, and the reaction
// cascade is drained to completion before Submit returns.
//
// The returned slice holds every domain event the submission recorded,
// command-decided and reaction-emitted alike, in save order. An empty result
// with a nil error is an idempotent no-op.
func (e *Engine) Submit(
	ctx context.Context,
	actionType string,
	agentID string,
	payload map[string]any,
	tick int,
) (events.DomainEvents, error) {

	e.mu.Lock()
	defer e.mu.Unlock()

	agg := e.aggregateFor(agentID)

	decided, err := e.commands.Handle(actionType, agg, payload, tick, e.services)
	if err != nil {
		return nil, err
	}

	if len(decided) == 0 {
		e.logDebug(ctx, "action was an idempotent no-op", "action", actionType, "agent_id", agentID, "tick", tick)
		return nil, nil
	}

	return e.recordAndCascade(ctx, agentID, tick, decided)
}

// Deposit records an external cash inflow (seed capital, customer revenue)
// as a FUNDS_TRANSFERRED event. It goes through the same record path as any
// action-decided event, so rebuilds reproduce it.
func (e *Engine) Deposit(
	ctx context.Context,
	agentID string,
	amount float64,
	description string,
	tick int,
) (events.DomainEvents, error) {

	e.mu.Lock()
	defer e.mu.Unlock()

	deposit := events.BuildFundsTransferred(amount, events.CategoryRevenue, description, "")

	return e.recordAndCascade(ctx, agentID, tick, events.DomainEvents{deposit})
}

// GetState returns the live aggregate for one agent, created empty on first
// use. Callers must treat it as read-only; all mutation goes through events.
func (e *Engine) GetState(agentID string) *state.AggregateState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.aggregateFor(agentID)
}

// Snapshot returns a deep copy of the agent's state, safe for callers to
// retain or mutate. GetState stays the cheap view for read-only callers.
func (e *Engine) Snapshot(agentID string) *state.AggregateState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.aggregateFor(agentID).Clone()
}

// GetHistory returns a copy of the ordered event log for one agent.
func (e *Engine) GetHistory(agentID string) eventstore.RecordedEvents {
	return e.store.AgentLog(agentID)
}

// GlobalHistory returns a copy of the ordered tape of all events.
func (e *Engine) GlobalHistory() eventstore.RecordedEvents {
	return e.store.GlobalTape()
}

// Subscribe registers an observer for one event type on the bus.
func (e *Engine) Subscribe(eventType string, handler eventstore.Subscriber) error {
	return e.bus.Subscribe(eventType, handler)
}

// SubscribeAll registers an observer for every event type on the bus.
func (e *Engine) SubscribeAll(handler eventstore.Subscriber) error {
	return e.bus.SubscribeAll(handler)
}

// Rebuild folds the agent's full log into a fresh aggregate, independent of
// the live one. Given the same log it always yields structurally identical
// state; the live aggregate is the same fold applied incrementally.
func (e *Engine) Rebuild(agentID string) (*state.AggregateState, error) {
	return state.Rebuild(e.projections, agentID, e.store.AgentLog(agentID))
}

// logDebug, logWarn, and logError prefer the context-aware logger so trace
// correlation from the caller's context survives into the log record.
func (e *Engine) logDebug(ctx context.Context, msg string, args ...any) {
	if e.contextualLogger != nil {
		e.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

func (e *Engine) logWarn(ctx context.Context, msg string, args ...any) {
	if e.contextualLogger != nil {
		e.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}

func (e *Engine) logError(ctx context.Context, msg string, args ...any) {
	if e.contextualLogger != nil {
		e.contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if e.logger != nil {
		e.logger.Error(msg, args...)
	}
}

func (e *Engine) aggregateFor(agentID string) *state.AggregateState {
	agg, ok := e.aggregates[agentID]
	if !ok {
		agg = state.NewAggregateState(agentID)
		e.aggregates[agentID] = agg
	}

	return agg
}
