package events_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudsim/tycoon-engine-go/events"
)

func Test_EventFromJSON_RestoresTheTypedVariant(t *testing.T) {
	// arrange
	original := events.BuildLoanOriginated("loan-1", "operating_credit", 2000, 0.0025, 26, 80.5, 4)

	payload, err := jsoniter.ConfigFastest.Marshal(original)
	require.NoError(t, err)

	// act
	decoded, err := events.EventFromJSON(original.EventType(), payload)

	// assert
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func Test_EventFromJSON_RestoresFailureDetails(t *testing.T) {
	// arrange
	original := events.BuildActionFailed("pay_bill", events.ReasonInsufficientFunds, map[string]string{
		"required":  "500.00",
		"available": "120.00",
	})

	payload, err := jsoniter.ConfigFastest.Marshal(original)
	require.NoError(t, err)

	// act
	decoded, err := events.EventFromJSON(original.EventType(), payload)

	// assert
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func Test_EventFromJSON_UnknownType(t *testing.T) {
	// act
	_, err := events.EventFromJSON("SOMETHING_HAS_HAPPENED", []byte(`{}`))

	// assert
	assert.ErrorIs(t, err, events.ErrUnknownEventType)
}

func Test_EventFromJSON_MalformedPayload(t *testing.T) {
	// act
	_, err := events.EventFromJSON(events.BillPaidEventType, []byte(`{"BillID":`))

	// assert
	assert.ErrorIs(t, err, events.ErrUnmarshalingEventFailed)
}
