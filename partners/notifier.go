package partners

import (
	"log/slog"
)

// Notifier is the delivery sink for agent notifications.
type Notifier interface {
	Send(recipient string, content string, tick int) error
}

// SlogNotifier delivers notifications to a structured logger. It stands in
// for the real communication channel of the surrounding simulation.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a Notifier backed by the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// Send logs the notification.
func (n *SlogNotifier) Send(recipient string, content string, tick int) error {
	n.logger.Info("notification delivered", "recipient", recipient, "tick", tick, "content", content)
	return nil
}

var _ Notifier = (*SlogNotifier)(nil)
