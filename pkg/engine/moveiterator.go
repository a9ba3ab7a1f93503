package engine

import (
	"github.com/ChizhovVadim/chesstack/pkg/common"
)

const (
	captureWeight    = 2
	smallTakesBig    = 100
	centralizeWeight = 5
	dropWeight       = 0.3
	successionScore  = 50
)

type orderedAction struct {
	action common.Action
	key    float64
}

// occupancy is a square-indexed copy of the board for capture lookups.
type occupancy struct {
	pieces   [common.SquareCount]common.Piece
	occupied [common.SquareCount]bool
}

func newOccupancy(p common.Position) *occupancy {
	var result = &occupancy{}
	for _, info := range p.Pieces() {
		result.pieces[info.Square] = info.Piece
		result.occupied[info.Square] = true
	}
	return result
}

// candidates gathers all captures, the first quiet moves, drops and
// successions of side, each keyed by the ordering heuristic.
func (e *Engine) candidates(side common.Color) []orderedAction {
	var p = e.position
	var board = newOccupancy(p)
	var result []orderedAction
	var quiets = 0
	for _, info := range p.Pieces() {
		if info.Color != side {
			continue
		}
		for _, to := range p.LegalMoveTargets(info.Square) {
			var isCapture = board.occupied[to] && board.pieces[to].Color != side
			if !isCapture {
				if quiets >= e.QuietLimit {
					continue
				}
				quiets++
			}
			var action = common.NewMove(info.Square, to)
			result = append(result, orderedAction{
				action: action,
				key:    moveKey(board, info.Piece, action),
			})
		}
	}
	var drops = p.LegalDrops(side)
	for i := 0; i < len(drops) && i < e.DropLimit; i++ {
		result = append(result, orderedAction{
			action: drops[i],
			key:    dropWeight * float64(common.PieceValue(drops[i].Kind())),
		})
	}
	var successions = p.LegalSuccessions(side)
	for i := 0; i < len(successions) && i < e.SuccessionLimit; i++ {
		result = append(result, orderedAction{
			action: common.NewSuccession(successions[i]),
			key:    successionScore,
		})
	}
	return result
}

func moveKey(board *occupancy, mover common.Piece, action common.Action) float64 {
	var score float64
	var to = action.To()
	if board.occupied[to] && board.pieces[to].Color != mover.Color {
		var capturedValue = common.PieceValue(board.pieces[to].Kind)
		score += captureWeight * float64(capturedValue)
		if common.PieceValue(mover.Kind) < capturedValue {
			score += smallTakesBig
		}
	}
	var delta = common.ManhattanDistanceToCenter(action.From()) -
		common.ManhattanDistanceToCenter(to)
	score += centralizeWeight * float64(delta)
	return score
}

// selectQuick is the one-ply heuristic choice for the side to move.
func (e *Engine) selectQuick() common.Action {
	var best = common.ActionEmpty
	var bestKey = -valueInfinity
	for _, c := range e.candidates(e.color) {
		var key = c.key + e.rnd.Float64()*e.Jitter
		if key > bestKey {
			bestKey = key
			best = c.action
		}
	}
	return best
}
