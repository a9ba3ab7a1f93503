package engine

import (
	"github.com/ChizhovVadim/chesstack/pkg/common"
)

// negamax returns the score of the position for the side to move.
// multiplier is +1 when the side to move is the engine's colour.
func (e *Engine) negamax(depth int, alpha, beta, multiplier float64, height int) float64 {
	e.nodes++
	e.clearPV(height)
	var position = e.position

	if depth <= 0 {
		return multiplier * e.evaluator.Evaluate(position, e.color)
	}

	var actions = AllLegalActions(position, position.Turn())
	if len(actions) == 0 {
		return multiplier * e.evaluator.Evaluate(position, e.color)
	}

	var snapshot = position.Snapshot()
	var best = -valueInfinity
	var searched = false

	for _, action := range actions {
		position.Restore(snapshot)
		if !position.Apply(action) {
			continue
		}
		position.EndTurn()
		searched = true

		var score = -e.negamax(depth-1, -beta, -alpha, -multiplier, height+1)

		if score > best {
			best = score
			e.assignPV(height, action)
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}

	position.Restore(snapshot)

	if !searched {
		return multiplier * e.evaluator.Evaluate(position, e.color)
	}
	return best
}

func (e *Engine) clearPV(height int) {
	if height < len(e.stack) {
		e.stack[height].clear()
	}
}

func (e *Engine) assignPV(height int, action common.Action) {
	if height+1 < len(e.stack) {
		e.stack[height].assign(action, &e.stack[height+1])
	}
}
