// internal/store/memory.go
//
// In-memory registry of guessing sessions, one per browser.
// Sessions are ephemeral by design of the game: nothing survives a restart
// and no scores are kept.
//
// Characteristics:
//   - Stores *game.Game values keyed by the browser session ID.
//   - Concurrency-safe via RWMutex; Update serializes mutations of one game.
//   - Idle sessions are dropped by Sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/numberguess/internal/game"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("not found")

// Store defines the registry interface for guessing sessions.
type Store interface {
	// Save persists or replaces the game for id.
	Save(ctx context.Context, id string, g *game.Game) error

	// Get retrieves the game for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update runs fn on the game for id while holding the store lock.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete forgets id. Missing ids are not an error.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle for longer than ttl and reports how many.
	Sweep(ttl time.Duration) int

	// Len reports the number of live sessions.
	Len() int
}

type entry struct {
	g        *game.Game
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map
	games map[string]*entry // keyed by browser session ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{games: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, id string, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = &entry{g: g, lastSeen: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e.g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	e.lastSeen = m.now()
	return fn(e.g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.games {
		if e.lastSeen.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
