package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/numberguess/internal/game"
)

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: err = %v, want ErrNotFound", err)
	}

	g := game.New()
	if err := s.Save(ctx, "a", g); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != g {
		t.Fatal("get returned a different game")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.Update(ctx, "nope", func(*game.Game) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: err = %v", err)
	}

	_ = s.Save(ctx, "a", game.New(game.WithGenerator(game.FixedGenerator(50))))
	wantErr := errors.New("boom")
	if err := s.Update(ctx, "a", func(*game.Game) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("update err = %v, want %v", err, wantErr)
	}

	var o game.Outcome
	if err := s.Update(ctx, "a", func(g *game.Game) error {
		o = g.SubmitGuess("50")
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if o.Kind != game.KindWon {
		t.Fatalf("kind = %q, want won", o.Kind)
	}
}

func TestUpdateSerializesConcurrentGuesses(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Save(ctx, "a", game.New(game.WithGenerator(game.FixedGenerator(100))))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, "a", func(g *game.Game) error {
				g.SubmitGuess("1")
				return nil
			})
		}()
	}
	wg.Wait()

	g, _ := s.Get(ctx, "a")
	if st := g.Stats(); st.AttemptCount != game.MaxAttempts || st.Active {
		t.Fatalf("stats = %+v", st)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Save(ctx, "a", game.New())
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete twice: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newMemory(func() time.Time { return now })

	_ = m.Save(ctx, "old", game.New())
	now = now.Add(time.Hour)
	_ = m.Save(ctx, "fresh", game.New())
	now = now.Add(10 * time.Minute)

	if n := m.Sweep(30 * time.Minute); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if _, err := m.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatal("old session survived sweep")
	}
	if _, err := m.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session swept: %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	if err := s.Save(ctx, "a", game.New()); !errors.Is(err, context.Canceled) {
		t.Fatalf("save err = %v, want context.Canceled", err)
	}
}
