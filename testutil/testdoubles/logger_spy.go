// Package testdoubles holds spies for the observability interfaces, used to
// assert on operational logging and metrics without a real backend.
package testdoubles

import (
	"context"
	"sync"

	"github.com/sudsim/tycoon-engine-go/eventstore"
)

// LogEntry is one captured log call.
type LogEntry struct {
	Level      string
	Msg        string
	Args       []any
	Contextual bool
}

// LoggerSpy captures every log call for inspection in tests.
type LoggerSpy struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLoggerSpy creates an empty spy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug captures a debug call.
func (s *LoggerSpy) Debug(msg string, args ...any) { s.capture("DEBUG", msg, args) }

// Info captures an info call.
func (s *LoggerSpy) Info(msg string, args ...any) { s.capture("INFO", msg, args) }

// Warn captures a warn call.
func (s *LoggerSpy) Warn(msg string, args ...any) { s.capture("WARN", msg, args) }

// Error captures an error call.
func (s *LoggerSpy) Error(msg string, args ...any) { s.capture("ERROR", msg, args) }

// DebugContext captures a context-aware debug call.
func (s *LoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.captureContextual("DEBUG", msg, args)
}

// InfoContext captures a context-aware info call.
func (s *LoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.captureContextual("INFO", msg, args)
}

// WarnContext captures a context-aware warn call.
func (s *LoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.captureContextual("WARN", msg, args)
}

// ErrorContext captures a context-aware error call.
func (s *LoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.captureContextual("ERROR", msg, args)
}

func (s *LoggerSpy) capture(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (s *LoggerSpy) captureContextual(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, LogEntry{Level: level, Msg: msg, Args: args, Contextual: true})
}

// Entries returns a copy of all captured calls.
func (s *LoggerSpy) Entries() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)

	return out
}

// CountWithLevel returns how many captured calls have the given level.
func (s *LoggerSpy) CountWithLevel(level string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, entry := range s.entries {
		if entry.Level == level {
			count++
		}
	}

	return count
}

// HasMessage reports whether any captured call carries the given message.
func (s *LoggerSpy) HasMessage(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.Msg == msg {
			return true
		}
	}

	return false
}

// HasContextualMessage reports whether the given message was logged through
// a context-aware call.
func (s *LoggerSpy) HasContextualMessage(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.Contextual && entry.Msg == msg {
			return true
		}
	}

	return false
}

var (
	_ eventstore.Logger           = (*LoggerSpy)(nil)
	_ eventstore.ContextualLogger = (*LoggerSpy)(nil)
)
