package engine

import (
	"errors"
	"math"

	"github.com/ChizhovVadim/chesstack/pkg/common"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNoLegalActions = errors.New("no legal actions")
	ErrIllegalAction  = errors.New("illegal action")
)

var valueInfinity = math.Inf(1)

// ResolvePromotion picks the default promotion kind: a queen when offered,
// otherwise the first choice.
func ResolvePromotion(choices []common.PieceKind) common.PieceKind {
	for _, kind := range choices {
		if kind == common.Queen {
			return kind
		}
	}
	if len(choices) == 0 {
		return common.KindNone
	}
	return choices[0]
}

// resolveAction turns a bare move onto a promotion square into a promotion.
func resolveAction(p common.Position, a common.Action) common.Action {
	if a.Type() != common.ActionMove {
		return a
	}
	var choices = p.PromotionChoices(a.From(), a.To())
	if len(choices) == 0 {
		return a
	}
	return a.WithPromotion(ResolvePromotion(choices))
}

// ApplyAction applies a, resolving a bare move onto a promotion square to
// the default promotion. The caller ends the turn.
func ApplyAction(p common.Position, a common.Action) (common.Action, error) {
	a = resolveAction(p, a)
	if !p.Apply(a) {
		return common.ActionEmpty, ErrIllegalAction
	}
	return a, nil
}
