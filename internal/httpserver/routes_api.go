// internal/httpserver/routes_api.go
//
// JSON routes for script clients. Mounted under /api:
//   - POST /api/game/new   → start (or restart) the caller's game
//   - POST /api/game/guess → submit a guess, returns the outcome
//   - GET  /api/game/stats → session snapshot; secret only in debug mode
//
// The caller's game is the same one the HTML page plays, keyed by the
// session cookie.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numberguess/internal/game"
	"github.com/robalobadob/numberguess/internal/ui"
)

func (s *Server) mountAPI(r chi.Router) {
	r.Use(cors(s.cfg.ClientOrigin))
	r.Use(jsonContentType)
	r.Use(withSession(s.cfg.CookieName, s.cfg.CookieSecure))

	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/stats", s.handleStats)
}

// newGameRes is returned by POST /api/game/new.
type newGameRes struct {
	GameID      string `json:"gameId"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	MaxAttempts int    `json:"maxAttempts"`
	Active      bool   `json:"active"`
}

// handleNewGame replaces the caller's game wholesale.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	g := s.newGame(sid)
	if err := s.store.Save(r.Context(), sid, g); err != nil {
		s.apiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:      g.ID,
		Min:         game.MinNumber,
		Max:         game.MaxNumber,
		MaxAttempts: game.MaxAttempts,
		Active:      g.Stats().Active,
	})
}

// guessReq/Res payloads for POST /api/game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Kind         game.Kind      `json:"kind"`
	Error        string         `json:"error,omitempty"` // invalid only
	Guess        int            `json:"guess,omitempty"`
	Attempts     int            `json:"attempts"`
	AttemptsLeft int            `json:"attemptsLeft"`
	Direction    game.Direction `json:"direction,omitempty"`
	Proximity    game.Proximity `json:"proximity,omitempty"`
	Secret       int            `json:"secret,omitempty"` // lost only
	Message      string         `json:"message,omitempty"`
	MessagePT    string         `json:"messagePt,omitempty"`
}

// handleGuess applies a guess to the caller's game.
// Invalid input answers 400 with the outcome body; nothing is consumed.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}

	var o game.Outcome
	err := s.withGame(r.Context(), sessionID(r), func(g *game.Game) error {
		o = g.SubmitGuess(req.Guess)
		return nil
	})
	if err != nil {
		s.apiError(w, err)
		return
	}

	v := ui.Render(o)
	res := guessRes{
		Kind:         o.Kind,
		Error:        errorCode(o.Err),
		Guess:        o.Guess,
		Attempts:     o.Attempts,
		AttemptsLeft: o.AttemptsLeft,
		Direction:    o.Direction,
		Proximity:    o.Proximity,
		Secret:       o.Secret,
		Message:      v.Message,
		MessagePT:    v.MessagePT,
	}
	status := http.StatusOK
	if o.Kind == game.KindInvalid {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}

// statsRes mirrors game.Stats with the secret made optional.
type statsRes struct {
	Secret       *int `json:"secret,omitempty"`
	AttemptCount int  `json:"attempts"`
	MaxAttempts  int  `json:"maxAttempts"`
	Active       bool `json:"active"`
}

// handleStats returns a snapshot of the caller's game.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var st game.Stats
	err := s.withGame(r.Context(), sessionID(r), func(g *game.Game) error {
		st = g.Stats()
		return nil
	})
	if err != nil {
		s.apiError(w, err)
		return
	}
	res := statsRes{AttemptCount: st.AttemptCount, MaxAttempts: st.MaxAttempts, Active: st.Active}
	if s.cfg.Debug {
		res.Secret = &st.Secret
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) apiError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("api request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
}

// errorCode maps validation sentinels to wire codes.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, game.ErrNotANumber):
		return "not_a_number"
	default:
		return "invalid"
	}
}
