package ui

import (
	"strings"
	"testing"

	"github.com/robalobadob/numberguess/internal/game"
)

func TestRenderWonPluralization(t *testing.T) {
	one := Render(game.Outcome{Kind: game.KindWon, Attempts: 1})
	if !strings.Contains(one.Message, "in 1 attempt!") {
		t.Errorf("singular message = %q", one.Message)
	}
	if !strings.Contains(one.MessagePT, "1 tentativa!") {
		t.Errorf("singular pt message = %q", one.MessagePT)
	}

	many := Render(game.Outcome{Kind: game.KindWon, Attempts: 4})
	if !strings.Contains(many.Message, "in 4 attempts!") {
		t.Errorf("plural message = %q", many.Message)
	}
	if many.Class != ClassSuccess || many.Animation != AnimationCelebrate || !many.InputDisabled {
		t.Errorf("won view = %+v", many)
	}
}

func TestRenderLostRevealsSecret(t *testing.T) {
	v := Render(game.Outcome{Kind: game.KindLost, Secret: 63, Attempts: 10})
	if !strings.Contains(v.Message, "The number was 63") || !strings.Contains(v.MessagePT, "O número era 63") {
		t.Errorf("lost view = %+v", v)
	}
	if v.Class != ClassError || v.Animation != AnimationDisappoint || !v.ShowReset || !v.InputDisabled {
		t.Errorf("lost view = %+v", v)
	}
}

func TestRenderHint(t *testing.T) {
	tests := []struct {
		name string
		o    game.Outcome
		want string
	}{
		{"higher very close", game.Outcome{Kind: game.KindHint, Direction: game.DirectionHigher, Proximity: game.ProximityVeryClose, AttemptsLeft: 8}, "Try a higher number! 📈 🔥 Very close! (8 attempts left)"},
		{"lower close", game.Outcome{Kind: game.KindHint, Direction: game.DirectionLower, Proximity: game.ProximityClose, AttemptsLeft: 5}, "Try a lower number! 📉 🔶 Close! (5 attempts left)"},
		{"warm", game.Outcome{Kind: game.KindHint, Direction: game.DirectionLower, Proximity: game.ProximityWarm, AttemptsLeft: 1}, "Try a lower number! 📉 🔵 Getting warmer! (1 attempts left)"},
		{"cold", game.Outcome{Kind: game.KindHint, Direction: game.DirectionLower, Proximity: game.ProximityCold, AttemptsLeft: 9}, "Try a lower number! 📉 ❄️ Cold! (9 attempts left)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(tt.o)
			if v.Message != tt.want {
				t.Errorf("message = %q, want %q", v.Message, tt.want)
			}
			if v.Class != ClassHint || v.InputDisabled || !v.ShowResult {
				t.Errorf("hint view = %+v", v)
			}
		})
	}
}

func TestRenderInvalid(t *testing.T) {
	nan := Render(game.Outcome{Kind: game.KindInvalid, Err: game.ErrNotANumber})
	if !strings.Contains(nan.Message, "valid number") || nan.ShowReset {
		t.Errorf("not-a-number view = %+v", nan)
	}

	oor := Render(game.Outcome{Kind: game.KindInvalid, Err: game.ErrOutOfRange, Attempts: 2})
	if !strings.Contains(oor.Message, "between 1 and 100") || !oor.ShowReset {
		t.Errorf("out-of-range view = %+v", oor)
	}
	if oor.Class != ClassError || oor.Animation != AnimationNone {
		t.Errorf("out-of-range view = %+v", oor)
	}
}

func TestRenderEmpty(t *testing.T) {
	if v := Render(game.Outcome{}); v != (View{}) {
		t.Errorf("zero outcome view = %+v", v)
	}
	if v := Render(game.Outcome{Kind: game.KindIgnored}); v.ShowResult {
		t.Errorf("ignored view = %+v", v)
	}
}

func TestForSession(t *testing.T) {
	g := game.New(game.WithGenerator(game.FixedGenerator(20)))
	if v := ForSession(g); v.ShowResult {
		t.Fatalf("fresh session shows result: %+v", v)
	}
	g.SubmitGuess("25")
	if v := ForSession(g); v.Class != ClassHint {
		t.Fatalf("after hint: %+v", v)
	}
}
