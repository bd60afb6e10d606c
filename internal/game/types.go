// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Direction / Proximity: the two parts of a hint.
//   - Kind / Outcome: the discriminated result of a guess submission.
//   - Stats: read-only snapshot of a session.
//   - Game: state for a single in-progress or finished session.

package game

import "errors"

const (
	// MinNumber and MaxNumber bound both the secret and accepted guesses.
	MinNumber = 1
	MaxNumber = 100

	// MaxAttempts is the attempt budget of a session.
	MaxAttempts = 10
)

// Validation failures. They are reported through an Invalid outcome,
// never returned as an error value from SubmitGuess.
var (
	ErrNotANumber = errors.New("not a number")
	ErrOutOfRange = errors.New("number out of range")
)

// Direction tells the player which way to move the next guess.
type Direction string

const (
	DirectionNone   Direction = ""
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// Proximity is a coarse bucket of |guess - secret|.
type Proximity string

const (
	ProximityNone      Proximity = ""
	ProximityVeryClose Proximity = "very_close"
	ProximityClose     Proximity = "close"
	ProximityWarm      Proximity = "warm"
	ProximityCold      Proximity = "cold"
)

// Kind discriminates an Outcome.
// Possible values:
//   - "won":     the guess matched the secret.
//   - "lost":    the attempt budget ran out.
//   - "hint":    wrong guess, attempts remain.
//   - "invalid": input rejected; no attempt consumed.
//   - "ignored": the session had already ended.
type Kind string

const (
	KindWon     Kind = "won"
	KindLost    Kind = "lost"
	KindHint    Kind = "hint"
	KindInvalid Kind = "invalid"
	KindIgnored Kind = "ignored"
)

// Outcome is the result of one SubmitGuess call.
// Only the fields relevant to Kind are set.
type Outcome struct {
	Kind         Kind
	Guess        int       // parsed guess (won/lost/hint)
	Attempts     int       // attempt count after this call
	AttemptsLeft int       // MaxAttempts - Attempts
	Secret       int       // revealed on loss only
	Direction    Direction // hint only
	Proximity    Proximity // hint only
	Err          error     // invalid only: ErrNotANumber or ErrOutOfRange
}

// Ended reports whether the outcome finished the session.
func (o Outcome) Ended() bool { return o.Kind == KindWon || o.Kind == KindLost }

// Stats is a read-only snapshot of a session.
type Stats struct {
	Secret       int  `json:"secret"`
	AttemptCount int  `json:"attempts"`
	MaxAttempts  int  `json:"maxAttempts"`
	Active       bool `json:"active"`
}

// Game holds the state of a single guessing session.
// It is not safe for concurrent use; callers serialize access.
type Game struct {
	ID       string // random hex identifier, fresh on every start
	secret   int
	attempts int
	active   bool
	history  []int   // accepted guesses, len == attempts
	last     Outcome // most recent non-ignored outcome

	rng       Generator
	observers []Observer
}
