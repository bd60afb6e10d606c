package game

// EventType distinguishes session events delivered to observers.
type EventType string

const (
	EventStarted EventType = "started"
	EventGuess   EventType = "guess"
)

// Event is delivered synchronously to every registered Observer.
type Event struct {
	Type    EventType
	GameID  string
	Outcome Outcome // zero for EventStarted
}

// Observer receives session events. Presentation layers (logging,
// animations) subscribe here instead of being called by the engine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
