package engine

import (
	"math/rand"

	"github.com/ChizhovVadim/chesstack/pkg/common"
)

// WeightedBot prefers any move over any drop and any drop over a succession.
type WeightedBot struct {
	position common.Position
	rnd      *rand.Rand
}

func NewWeightedBot(p common.Position, rnd *rand.Rand) *WeightedBot {
	return &WeightedBot{position: p, rnd: rnd}
}

func (b *WeightedBot) Play(side common.Color) (common.Action, error) {
	var p = b.position
	if p.Turn() != side {
		return common.ActionEmpty, ErrNotYourTurn
	}
	for _, info := range p.Pieces() {
		if info.Color != side {
			continue
		}
		var targets = p.LegalMoveTargets(info.Square)
		if len(targets) == 0 {
			continue
		}
		var to = targets[b.rnd.Intn(len(targets))]
		if a, err := ApplyAction(p, common.NewMove(info.Square, to)); err == nil {
			return a, nil
		}
	}
	for _, a := range p.LegalDrops(side) {
		if p.Apply(a) {
			return a, nil
		}
	}
	for _, sq := range p.LegalSuccessions(side) {
		var a = common.NewSuccession(sq)
		if p.Apply(a) {
			return a, nil
		}
	}
	return common.ActionEmpty, ErrNoLegalActions
}

func (b *WeightedBot) TryBestMove(side common.Color) bool {
	var _, err = b.Play(side)
	return err == nil
}
