package material

import (
	"github.com/ChizhovVadim/chesstack/pkg/common"
)

const (
	center4x4Bonus = 10
	center2x2Bonus = 20
	stunPenalty    = 30
	moveStackBonus = 15
	pocketWeight   = 0.3
)

// EvaluationService scores material, centralization, fatigue and pockets.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p common.Position, side common.Color) float64 {
	var score float64
	for _, info := range p.Pieces() {
		var v = float64(pieceScore(info))
		if info.Color == side {
			score += v
		} else {
			score -= v
		}
	}
	return score + (PocketValue(p.Pocket(side)) - PocketValue(p.Pocket(side.Opposite())))
}

func pieceScore(info common.PieceInfo) int {
	var v = common.PieceValue(info.Kind)
	if common.InCenter2x2(info.Square) {
		v += center2x2Bonus
	} else if common.InCenter4x4(info.Square) {
		v += center4x4Bonus
	}
	v -= stunPenalty * info.Stun
	v += moveStackBonus * info.MoveStack
	return v
}

func PocketValue(pocket [common.KindCount]int) float64 {
	var sum float64
	for kind, count := range pocket {
		sum += float64(common.PieceValue(common.PieceKind(kind))*count) * pocketWeight
	}
	return sum
}
