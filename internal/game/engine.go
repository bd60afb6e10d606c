// internal/game/engine.go
//
// Core game engine for a single number-guessing session.
// Responsibilities:
//   - Start sessions with a secret drawn from an injected Generator.
//   - Validate guesses (integer, within [MinNumber, MaxNumber]).
//   - Classify wrong guesses by direction and proximity tier.
//   - Track state transitions: active → won/lost.
//   - Notify observers; the engine itself never renders anything.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithGenerator overrides the random source used to pick secrets.
func WithGenerator(r Generator) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithObserver registers an observer for session events.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// New constructs a game and starts its first session.
// Without WithGenerator the secret comes from crypto/rand.
func New(opts ...Option) *Game {
	g := &Game{rng: NewCryptoGenerator()}
	for _, opt := range opts {
		opt(g)
	}
	g.Start()
	return g
}

// Start replaces the session wholesale: new secret, zero attempts, active.
func (g *Game) Start() {
	g.ID = randomID()
	g.secret = MinNumber + g.rng.Intn(MaxNumber-MinNumber+1)
	g.attempts = 0
	g.active = true
	g.history = nil
	g.last = Outcome{}
	g.notify(Event{Type: EventStarted, GameID: g.ID})
}

// Reset is Start under the name the UI uses.
func (g *Game) Reset() { g.Start() }

// SubmitGuess validates and evaluates raw user input.
//
// Rules:
//   - Inactive session → KindIgnored, nothing changes.
//   - Non-integer or out-of-range input → KindInvalid, nothing changes.
//   - Otherwise the attempt is consumed and the guess classified:
//     match → won; budget exhausted → lost; else a hint.
func (g *Game) SubmitGuess(raw string) Outcome {
	if !g.active {
		return Outcome{Kind: KindIgnored, Attempts: g.attempts, AttemptsLeft: g.left()}
	}

	guess, err := ParseGuess(raw)
	if err != nil {
		o := Outcome{Kind: KindInvalid, Attempts: g.attempts, AttemptsLeft: g.left(), Err: err}
		g.notify(Event{Type: EventGuess, GameID: g.ID, Outcome: o})
		return o
	}

	g.attempts++
	g.history = append(g.history, guess)

	o := Outcome{Guess: guess, Attempts: g.attempts, AttemptsLeft: g.left()}
	switch {
	case guess == g.secret:
		o.Kind = KindWon
		g.active = false
	case g.attempts >= MaxAttempts:
		o.Kind = KindLost
		o.Secret = g.secret
		g.active = false
	default:
		o.Kind = KindHint
		o.Direction = DirectionOf(guess, g.secret)
		o.Proximity = ClassifyProximity(abs(guess - g.secret))
	}

	g.last = o
	g.notify(Event{Type: EventGuess, GameID: g.ID, Outcome: o})
	return o
}

// Stats returns a snapshot of the session. It has no side effects.
func (g *Game) Stats() Stats {
	return Stats{
		Secret:       g.secret,
		AttemptCount: g.attempts,
		MaxAttempts:  MaxAttempts,
		Active:       g.active,
	}
}

// Last returns the most recent outcome that consumed an attempt.
// The zero Outcome means no guess has been accepted yet.
func (g *Game) Last() Outcome { return g.last }

// History returns a copy of the accepted guesses in order.
func (g *Game) History() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}

// ParseGuess turns raw input into a guess in [MinNumber, MaxNumber].
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer is rejected.
func ParseGuess(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < MinNumber || n > MaxNumber {
		return n, ErrOutOfRange
	}
	return n, nil
}

// DirectionOf says which way the player should move from guess.
func DirectionOf(guess, secret int) Direction {
	if guess < secret {
		return DirectionHigher
	}
	return DirectionLower
}

// ClassifyProximity buckets an absolute distance:
//
//	0..5 very close, 6..10 close, 11..20 warm, 21+ cold.
func ClassifyProximity(d int) Proximity {
	switch {
	case d <= 5:
		return ProximityVeryClose
	case d <= 10:
		return ProximityClose
	case d <= 20:
		return ProximityWarm
	default:
		return ProximityCold
	}
}

func (g *Game) left() int { return MaxAttempts - g.attempts }

func (g *Game) notify(e Event) {
	for _, o := range g.observers {
		o.Observe(e)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
