package command

import (
	"strconv"

	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/state"
)

// HiringFee is the fixed cost of bringing a new staff member on board.
const HiringFee = 100.0

// SeveranceMultiple scales the weekly wage into the severance payout.
const SeveranceMultiple = 2.0

// WeeklyWageForRole maps a role onto its weekly wage. The zero return marks
// an unknown role.
func WeeklyWageForRole(role string) float64 {
	switch role {
	case "cleaner":
		return 200
	case "attendant":
		return 250
	case "technician":
		return 350
	case "manager":
		return 500
	default:
		return 0
	}
}

type hireStaffCommand struct {
	Role string `json:"role"`
}

// HireStaff charges the fixed hiring fee and adds a staff member at the
// role's weekly wage. The fee and the hire are two separate facts so
// projections can subscribe to either.
func HireStaff(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[hireStaffCommand](payload)
	if err != nil {
		return invalidPayload(ActionHireStaff, err)
	}

	wage := WeeklyWageForRole(cmd.Role)
	if wage <= 0 {
		return events.DomainEvents{events.BuildActionFailed(ActionHireStaff, events.ReasonInvalidPayload, map[string]string{
			"role": cmd.Role,
		})}
	}

	if agg.Balance() < HiringFee {
		return events.DomainEvents{events.BuildActionFailed(ActionHireStaff, events.ReasonInsufficientFunds, map[string]string{
			"required":  formatMoney(HiringFee),
			"available": formatMoney(agg.Balance()),
		})}
	}

	staffID := svc.NewID()

	return events.DomainEvents{
		events.BuildFundsTransferred(-HiringFee, events.CategoryPayroll, "hiring fee: "+cmd.Role, staffID),
		events.BuildStaffHired(staffID, cmd.Role, wage),
	}
}

type fireStaffCommand struct {
	StaffID string `json:"staff_id"`
}

// FireStaff pays out severance of twice the weekly wage. It always succeeds
// when the staff id exists; only an unknown id is reportable.
func FireStaff(agg *state.AggregateState, payload map[string]any, tick int, svc Services) events.DomainEvents {
	cmd, err := decodePayload[fireStaffCommand](payload)
	if err != nil {
		return invalidPayload(ActionFireStaff, err)
	}

	member := agg.StaffByID(cmd.StaffID)
	if member == nil {
		return events.DomainEvents{events.BuildActionFailed(ActionFireStaff, events.ReasonMissingEntity, map[string]string{
			"staff_id": cmd.StaffID,
		})}
	}

	severance := member.Wage * SeveranceMultiple

	return events.DomainEvents{
		events.BuildFundsTransferred(-severance, events.CategoryPayroll, "severance: "+member.Role, member.StaffID),
		events.BuildStaffFired(member.StaffID, member.Role, severance),
	}
}

func invalidPayload(action string, err error) events.DomainEvents {
	return events.DomainEvents{events.BuildActionFailed(action, events.ReasonInvalidPayload, map[string]string{
		"error": err.Error(),
	})}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
