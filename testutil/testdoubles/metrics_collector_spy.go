package testdoubles

import (
	"sync"
	"time"

	"github.com/sudsim/tycoon-engine-go/eventstore"
)

// CounterRecord is one captured counter increment.
type CounterRecord struct {
	Metric string
	Labels map[string]string
}

// MetricsCollectorSpy captures metric calls for inspection in tests.
type MetricsCollectorSpy struct {
	mu       sync.Mutex
	counters []CounterRecord
}

// NewMetricsCollectorSpy creates an empty spy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// RecordDuration is a no-op; the engine only asserts on counters.
func (s *MetricsCollectorSpy) RecordDuration(string, time.Duration, map[string]string) {}

// IncrementCounter captures the increment with a copy of its labels.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	labelsCopy := make(map[string]string, len(labels))
	for k, v := range labels {
		labelsCopy[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, CounterRecord{Metric: metric, Labels: labelsCopy})
}

// RecordValue is a no-op; the engine only asserts on counters.
func (s *MetricsCollectorSpy) RecordValue(string, float64, map[string]string) {}

// CounterCount returns how many increments were captured for one metric.
func (s *MetricsCollectorSpy) CounterCount(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.counters {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

var _ eventstore.MetricsCollector = (*MetricsCollectorSpy)(nil)
