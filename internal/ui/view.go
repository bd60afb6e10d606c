// Package ui adapts game outcomes to what the page shows: bilingual
// message text, a CSS class, an animation hook, and control visibility.
// The game engine knows nothing about any of this.
package ui

import (
	"errors"
	"fmt"

	"github.com/robalobadob/numberguess/internal/game"
)

// CSS classes applied to the result box.
const (
	ClassSuccess = "success"
	ClassError   = "error"
	ClassHint    = "hint"
)

// Animation names understood by the stylesheet.
const (
	AnimationNone       = ""
	AnimationCelebrate  = "celebrate"
	AnimationDisappoint = "disappoint"
	AnimationThink      = "think"
)

// View is everything the template needs to draw one state of the page.
type View struct {
	Message       string `json:"message"`
	MessagePT     string `json:"messagePt"`
	Class         string `json:"class"`
	Animation     string `json:"animation,omitempty"`
	ShowResult    bool   `json:"showResult"`
	ShowReset     bool   `json:"showReset"`
	InputDisabled bool   `json:"inputDisabled"`
}

// Render maps an outcome to a view.
// Ignored outcomes and the zero Outcome render an empty, hidden result.
func Render(o game.Outcome) View {
	switch o.Kind {
	case game.KindWon:
		return View{
			Message:       fmt.Sprintf("🎉 Congratulations! You guessed it right in %d attempt%s!", o.Attempts, plural(o.Attempts)),
			MessagePT:     fmt.Sprintf("🎉 Parabéns! Você acertou em %d tentativa%s!", o.Attempts, plural(o.Attempts)),
			Class:         ClassSuccess,
			Animation:     AnimationCelebrate,
			ShowResult:    true,
			ShowReset:     true,
			InputDisabled: true,
		}
	case game.KindLost:
		return View{
			Message:       fmt.Sprintf("💔 Game Over! The number was %d. Better luck next time!", o.Secret),
			MessagePT:     fmt.Sprintf("💔 Fim de jogo! O número era %d. Mais sorte na próxima!", o.Secret),
			Class:         ClassError,
			Animation:     AnimationDisappoint,
			ShowResult:    true,
			ShowReset:     true,
			InputDisabled: true,
		}
	case game.KindHint:
		en, pt := directionText(o.Direction)
		pen, ppt := proximityText(o.Proximity)
		return View{
			Message:    fmt.Sprintf("%s %s (%d attempts left)", en, pen, o.AttemptsLeft),
			MessagePT:  fmt.Sprintf("%s %s (%d tentativas restantes)", pt, ppt, o.AttemptsLeft),
			Class:      ClassHint,
			Animation:  AnimationThink,
			ShowResult: true,
			ShowReset:  true,
		}
	case game.KindInvalid:
		v := View{Class: ClassError, ShowResult: true, ShowReset: o.Attempts > 0}
		if errors.Is(o.Err, game.ErrOutOfRange) {
			v.Message = fmt.Sprintf("❌ Number must be between %d and %d!", game.MinNumber, game.MaxNumber)
			v.MessagePT = fmt.Sprintf("❌ O número deve estar entre %d e %d!", game.MinNumber, game.MaxNumber)
		} else {
			v.Message = "❌ Please enter a valid number!"
			v.MessagePT = "❌ Por favor, digite um número válido!"
		}
		return v
	}
	return View{}
}

// ForSession picks the view for a page load: the last accepted outcome if
// there is one, otherwise the empty start state.
func ForSession(g *game.Game) View {
	return Render(g.Last())
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func directionText(d game.Direction) (string, string) {
	if d == game.DirectionHigher {
		return "Try a higher number! 📈", "Tente um número maior! 📈"
	}
	return "Try a lower number! 📉", "Tente um número menor! 📉"
}

func proximityText(p game.Proximity) (string, string) {
	switch p {
	case game.ProximityVeryClose:
		return "🔥 Very close!", "🔥 Muito perto!"
	case game.ProximityClose:
		return "🔶 Close!", "🔶 Perto!"
	case game.ProximityWarm:
		return "🔵 Getting warmer!", "🔵 Esquentando!"
	default:
		return "❄️ Cold!", "❄️ Frio!"
	}
}
