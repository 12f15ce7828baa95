package busmetrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudsim/tycoon-engine-go/busmetrics"
	"github.com/sudsim/tycoon-engine-go/events"
	"github.com/sudsim/tycoon-engine-go/eventstore"
)

func Test_Subscriber_CountsEventsByType(t *testing.T) {
	// arrange
	metrics := busmetrics.New(prometheus.NewRegistry())
	subscriber := metrics.Subscriber()

	// act
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 1, events.BuildFundsTransferred(100, events.CategoryRevenue, "opening", ""))))
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 1, events.BuildFundsTransferred(50, events.CategoryRevenue, "opening", ""))))
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 2, events.BuildStaffHired("staff-1", "cleaner", 200))))

	// assert
	assert.InDelta(t, 2, promtestutil.ToFloat64(metrics.EventsRecorded.WithLabelValues(events.FundsTransferredEventType)), 0.0001)
	assert.InDelta(t, 1, promtestutil.ToFloat64(metrics.EventsRecorded.WithLabelValues(events.StaffHiredEventType)), 0.0001)
}

func Test_Subscriber_CountsActionFailuresPerAgent(t *testing.T) {
	// arrange
	metrics := busmetrics.New(prometheus.NewRegistry())
	subscriber := metrics.Subscriber()

	failure := events.BuildActionFailed("pay_bill", events.ReasonInsufficientFunds, nil)

	// act
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 3, failure)))
	require.NoError(t, subscriber(givenRecorded(t, "player-2", 3, failure)))
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 4, failure)))

	// assert
	assert.InDelta(t, 2, promtestutil.ToFloat64(metrics.ActionFailures.WithLabelValues("player-1")), 0.0001)
	assert.InDelta(t, 1, promtestutil.ToFloat64(metrics.ActionFailures.WithLabelValues("player-2")), 0.0001)
}

func Test_Subscriber_TracksTheTickHighWater(t *testing.T) {
	// arrange
	metrics := busmetrics.New(prometheus.NewRegistry())
	subscriber := metrics.Subscriber()

	// act: ticks arrive out of order during a rebuild-style replay
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 5, events.BuildStaffHired("staff-1", "cleaner", 200))))
	require.NoError(t, subscriber(givenRecorded(t, "player-1", 2, events.BuildStaffHired("staff-2", "cleaner", 200))))

	// assert
	assert.InDelta(t, 5, promtestutil.ToFloat64(metrics.TickHighWater), 0.0001)
}

func givenRecorded(t *testing.T, agentID string, tick int, event events.DomainEvent) eventstore.RecordedEvent {
	t.Helper()

	recorded, err := eventstore.BuildRecordedEventWithEmptyMetadata(event, agentID, tick, time.Unix(1700000000, 0))
	require.NoError(t, err)

	return recorded
}
