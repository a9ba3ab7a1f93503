package engine

import "github.com/ChizhovVadim/chesstack/pkg/common"

// Policy chooses and applies one action for a side. Callers end the turn
// on the position after a successful call.
type Policy interface {
	// Play returns the applied action, ErrNotYourTurn, ErrNoLegalActions
	// or ErrIllegalAction.
	Play(side common.Color) (common.Action, error)
	TryBestMove(side common.Color) bool
}

type Evaluator interface {
	Evaluate(p common.Position, side common.Color) float64
}

// AllLegalActions lists moves (promotions expanded per kind) of every piece
// of side in board order, then drops, then successions.
func AllLegalActions(p common.Position, side common.Color) []common.Action {
	var result []common.Action
	for _, info := range p.Pieces() {
		if info.Color != side {
			continue
		}
		for _, to := range p.LegalMoveTargets(info.Square) {
			var choices = p.PromotionChoices(info.Square, to)
			if len(choices) == 0 {
				result = append(result, common.NewMove(info.Square, to))
				continue
			}
			for _, kind := range choices {
				result = append(result, common.NewPromote(info.Square, to, kind))
			}
		}
	}
	result = append(result, p.LegalDrops(side)...)
	for _, sq := range p.LegalSuccessions(side) {
		result = append(result, common.NewSuccession(sq))
	}
	return result
}
