// internal/httpserver/server.go
//
// HTTP server wiring for the number-guessing game.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, request log,
//     browser session cookie).
//   - HTML endpoints: GET "/", POST "/guess", POST "/reset", "/static/*".
//   - JSON endpoints under /api (see routes_api.go).
//   - Diagnostics: "/health".
//
// Notes:
//   - Each browser gets its own game, keyed by the session cookie.
//   - The page is rendered server-side from ui.View; no client state.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numberguess/assets"
	"github.com/robalobadob/numberguess/internal/config"
	"github.com/robalobadob/numberguess/internal/game"
	"github.com/robalobadob/numberguess/internal/store"
	"github.com/robalobadob/numberguess/internal/ui"
)

// Server bundles router, session store, page template and settings.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   config.Config
	rng   game.Generator
	page  *template.Template
}

// New constructs a Server, installs middleware, and registers routes.
// A nil rng means crypto/rand.
func New(st store.Store, cfg config.Config, rng game.Generator) (*Server, error) {
	page, err := assets.Page()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	static, err := assets.Static()
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	if rng == nil {
		rng = game.NewCryptoGenerator()
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, rng: rng, page: page}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.Len()})
	})

	s.r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// HTML game (browser session cookie)
	s.r.Group(func(r chi.Router) {
		r.Use(withSession(cfg.CookieName, cfg.CookieSecure))
		r.Get("/", s.handleIndex)
		r.Post("/guess", s.handleGuessForm)
		r.Post("/reset", s.handleResetForm)
	})

	// JSON API
	s.r.Route("/api", s.mountAPI)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.sweep(ctx)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sweep drops idle sessions every SweepInterval until ctx is done.
func (s *Server) sweep(ctx context.Context) {
	if s.cfg.SweepInterval <= 0 || s.cfg.SessionTTL <= 0 {
		return
	}
	t := time.NewTicker(s.cfg.SweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(s.cfg.SessionTTL); n > 0 {
				log.Info().Int("dropped", n).Int("live", s.store.Len()).Msg("swept idle sessions")
			}
		}
	}
}

// ------------------------------ GAME ---------------------------------------

// newGame builds a game whose events are logged under the browser session.
func (s *Server) newGame(sid string) *game.Game {
	return game.New(game.WithGenerator(s.rng), game.WithObserver(logObserver(sid, s.cfg.Debug)))
}

// withGame runs fn on the browser's game, starting one on first use.
func (s *Server) withGame(ctx context.Context, sid string, fn func(*game.Game) error) error {
	if _, err := s.store.Get(ctx, sid); errors.Is(err, store.ErrNotFound) {
		if err := s.store.Save(ctx, sid, s.newGame(sid)); err != nil {
			return fmt.Errorf("save game: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	return s.store.Update(ctx, sid, fn)
}

// logObserver replaces console debugging with structured logs.
// Guess values are logged only in debug mode.
func logObserver(sid string, debug bool) game.Observer {
	return game.ObserverFunc(func(e game.Event) {
		ev := log.Debug().Str("session", sid).Str("gameId", e.GameID)
		switch e.Type {
		case game.EventStarted:
			ev.Msg("game started")
		case game.EventGuess:
			o := e.Outcome
			ev = ev.Str("kind", string(o.Kind)).Int("attempts", o.Attempts)
			if o.Err != nil {
				ev = ev.Err(o.Err)
			}
			if o.Ended() {
				log.Info().Str("session", sid).Str("gameId", e.GameID).
					Str("result", string(o.Kind)).Int("attempts", o.Attempts).Msg("game finished")
			}
			if debug {
				ev = ev.Int("guess", o.Guess).Str("proximity", string(o.Proximity))
			}
			ev.Msg("guess evaluated")
		}
	})
}

// ------------------------------ HTML ---------------------------------------

// pageData feeds index.html.tmpl.
type pageData struct {
	View        ui.View
	Min, Max    int
	MaxAttempts int
	Attempts    int
	Active      bool
}

func newPageData(g *game.Game, v ui.View) pageData {
	st := g.Stats()
	return pageData{
		View:        v,
		Min:         game.MinNumber,
		Max:         game.MaxNumber,
		MaxAttempts: st.MaxAttempts,
		Attempts:    st.AttemptCount,
		Active:      st.Active,
	}
}

// handleIndex renders the current state of the browser's game.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var data pageData
	err := s.withGame(r.Context(), sessionID(r), func(g *game.Game) error {
		data = newPageData(g, ui.ForSession(g))
		return nil
	})
	if err != nil {
		s.pageError(w, err)
		return
	}
	s.render(w, http.StatusOK, data)
}

// handleGuessForm submits the "guess" form field and renders the result.
// A guess on a finished game just re-renders the final state.
func (s *Server) handleGuessForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	raw := r.PostFormValue("guess")

	var data pageData
	err := s.withGame(r.Context(), sessionID(r), func(g *game.Game) error {
		o := g.SubmitGuess(raw)
		v := ui.Render(o)
		if o.Kind == game.KindIgnored {
			v = ui.ForSession(g)
		}
		data = newPageData(g, v)
		return nil
	})
	if err != nil {
		s.pageError(w, err)
		return
	}
	s.render(w, http.StatusOK, data)
}

// handleResetForm starts a fresh game and redirects back to the page.
func (s *Server) handleResetForm(w http.ResponseWriter, r *http.Request) {
	err := s.withGame(r.Context(), sessionID(r), func(g *game.Game) error {
		g.Reset()
		return nil
	})
	if err != nil {
		s.pageError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("render page")
	}
}

func (s *Server) pageError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("game request failed")
	http.Error(w, "something went wrong", http.StatusInternalServerError)
}
