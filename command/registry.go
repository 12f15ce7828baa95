// Package command holds the pure command layer: per-action handlers that
// turn an action request into zero or more domain events. A handler may read
// the aggregate snapshot and the injected services but must never write to
// either; all mutation happens later, by projection of the events it returns.
package command

import (
	"errors"
	"fmt"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// Action type keys, dispatched to exactly one registered handler each.
const (
	ActionHireStaff          = "hire_staff"
	ActionFireStaff          = "fire_staff"
	ActionBuySupplies        = "buy_supplies"
	ActionBuyMachine         = "buy_machine"
	ActionMaintainMachines   = "maintain_machines"
	ActionLaunchMarketing    = "launch_marketing"
	ActionPayBill            = "pay_bill"
	ActionApplyLoan          = "apply_loan"
	ActionMakeLoanPayment    = "make_loan_payment"
	ActionResolveDilemma     = "resolve_dilemma"
	ActionRequestNegotiation = "request_negotiation"
	ActionFileTaxes          = "file_taxes"
)

// ErrDuplicateHandler is returned when two handlers claim one action type;
// registration conflicts are a startup error, never a runtime merge.
var ErrDuplicateHandler = errors.New("duplicate command handler for action type")

// ErrUnknownActionType is returned when no handler claims an action type.
var ErrUnknownActionType = errors.New("unknown action type")

// Vendor is the slice of the vendor contract command handlers consume.
type Vendor interface {
	GetPrice(item string, agentID string) (float64, error)
}

// Services are the injected collaborators handlers may read. NewID is
// injected so tests can make generated entity ids deterministic.
type Services struct {
	Vendor Vendor
	NewID  func() string
}

// Handler decides which events an action produces, given a read-only state
// snapshot and the current tick.
//
// The outcome policy: an empty result is an idempotent no-op (the request
// would re-apply an already-applied effect); a genuine rule violation
// produces a single ActionFailed event with a typed reason and structured
// details. Either way, nothing crosses the command boundary as an exception.
type Handler func(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents

// Registry maps action types to handlers. Construct it once at startup and
// inject it; there is no global handler table.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler for one action type. A second registration for the
// same type is an error.
func (r *Registry) Register(actionType string, handler Handler) error {
	if _, exists := r.handlers[actionType]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, actionType)
	}

	r.handlers[actionType] = handler

	return nil
}

// Handle dispatches one action to its handler.
func (r *Registry) Handle(
	actionType string,
	agg *state.AggregateState,
	payload map[string]any,
	tick int,
	svc Services,
) (events.DomainEvents, error) {

	handler, ok := r.handlers[actionType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownActionType, actionType)
	}

	return handler(agg, payload, tick, svc), nil
}

// DefaultRegistry builds the registry with every game action registered.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()

	registrations := map[string]Handler{
		ActionHireStaff:          HireStaff,
		ActionFireStaff:          FireStaff,
		ActionBuySupplies:        BuySupplies,
		ActionBuyMachine:         BuyMachine,
		ActionMaintainMachines:   MaintainMachines,
		ActionLaunchMarketing:    LaunchMarketing,
		ActionPayBill:            PayBill,
		ActionApplyLoan:          ApplyLoan,
		ActionMakeLoanPayment:    MakeLoanPayment,
		ActionResolveDilemma:     ResolveDilemma,
		ActionRequestNegotiation: RequestNegotiation,
		ActionFileTaxes:          FileTaxes,
	}

	for actionType, handler := range registrations {
		if err := r.Register(actionType, handler); err != nil {
			return nil, err
		}
	}

	return r, nil
}
