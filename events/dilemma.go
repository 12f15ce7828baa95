package events

// DilemmaResolvedEventType is the event type identifier.
const DilemmaResolvedEventType = "DILEMMA_RESOLVED"

// DilemmaResolved records the outcome of an ethical dilemma choice.
// MoneyEffect adjusts the ledger, ReputationEffect adjusts community standing.
type DilemmaResolved struct {
	DilemmaID        string
	Choice           string
	MoneyEffect      float64
	ReputationEffect float64
}

// BuildDilemmaResolved creates a new DilemmaResolved event.
func BuildDilemmaResolved(dilemmaID string, choice string, moneyEffect float64, reputationEffect float64) DilemmaResolved {
	return DilemmaResolved{
		DilemmaID:        dilemmaID,
		Choice:           choice,
		MoneyEffect:      moneyEffect,
		ReputationEffect: reputationEffect,
	}
}

// EventType returns the event type identifier.
func (e DilemmaResolved) EventType() string {
	return DilemmaResolvedEventType
}
