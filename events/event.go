package events

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

type EventTypeString = string

// ErrUnknownEventType is returned when a payload carries a type tag that no
// variant in this package claims.
var ErrUnknownEventType = errors.New("unknown event type")

// ErrUnmarshalingEventFailed is returned when a payload cannot be decoded
// into its typed variant.
var ErrUnmarshalingEventFailed = errors.New("unmarshalling event from json failed")

// EventFromJSON decodes a serialized payload back into its typed variant.
// The switch is the single authoritative mapping from type tag to variant;
// adding an event means adding a case here.
func EventFromJSON(eventType EventTypeString, payload []byte) (DomainEvent, error) {
	switch eventType {
	case FundsTransferredEventType:
		return eventFromJSON[FundsTransferred](payload)
	case BillIssuedEventType:
		return eventFromJSON[BillIssued](payload)
	case BillPaidEventType:
		return eventFromJSON[BillPaid](payload)
	case BillPenaltyAppliedEventType:
		return eventFromJSON[BillPenaltyApplied](payload)
	case TaxFiledEventType:
		return eventFromJSON[TaxFiled](payload)
	case SuppliesStockedEventType:
		return eventFromJSON[SuppliesStocked](payload)
	case MachinePurchasedEventType:
		return eventFromJSON[MachinePurchased](payload)
	case MachinesMaintainedEventType:
		return eventFromJSON[MachinesMaintained](payload)
	case StaffHiredEventType:
		return eventFromJSON[StaffHired](payload)
	case StaffFiredEventType:
		return eventFromJSON[StaffFired](payload)
	case MarketingCampaignLaunchedEventType:
		return eventFromJSON[MarketingCampaignLaunched](payload)
	case DilemmaResolvedEventType:
		return eventFromJSON[DilemmaResolved](payload)
	case LoanOriginatedEventType:
		return eventFromJSON[LoanOriginated](payload)
	case LoanPaymentMadeEventType:
		return eventFromJSON[LoanPaymentMade](payload)
	case LoanPaymentMissedEventType:
		return eventFromJSON[LoanPaymentMissed](payload)
	case LoanDefaultedEventType:
		return eventFromJSON[LoanDefaulted](payload)
	case CreditInquiryRecordedEventType:
		return eventFromJSON[CreditInquiryRecorded](payload)
	case CreditScoreUpdatedEventType:
		return eventFromJSON[CreditScoreUpdated](payload)
	case NegotiationRequestedEventType:
		return eventFromJSON[NegotiationRequested](payload)
	case NegotiationAttemptedEventType:
		return eventFromJSON[NegotiationAttempted](payload)
	case VendorNegotiationOutcomeEventType:
		return eventFromJSON[VendorNegotiationOutcome](payload)
	case MessageSentEventType:
		return eventFromJSON[MessageSent](payload)
	case ActionFailedEventType:
		return eventFromJSON[ActionFailed](payload)
	default:
		return nil, ErrUnknownEventType
	}
}

func eventFromJSON[E DomainEvent](payload []byte) (DomainEvent, error) {
	var event E
	if err := jsoniter.ConfigFastest.Unmarshal(payload, &event); err != nil {
		return nil, errors.Join(ErrUnmarshalingEventFailed, err)
	}

	return event, nil
}
