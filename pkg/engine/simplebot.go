package engine

import (
	"math/rand"

	"github.com/ChizhovVadim/chesstack/pkg/common"
)

// SimpleBot plays a uniformly random legal action.
type SimpleBot struct {
	position common.Position
	rnd      *rand.Rand
}

func NewSimpleBot(p common.Position, rnd *rand.Rand) *SimpleBot {
	return &SimpleBot{position: p, rnd: rnd}
}

func (b *SimpleBot) Play(side common.Color) (common.Action, error) {
	if b.position.Turn() != side {
		return common.ActionEmpty, ErrNotYourTurn
	}
	var actions = AllLegalActions(b.position, side)
	if len(actions) == 0 {
		return common.ActionEmpty, ErrNoLegalActions
	}
	return ApplyAction(b.position, actions[b.rnd.Intn(len(actions))])
}

func (b *SimpleBot) TryBestMove(side common.Color) bool {
	var _, err = b.Play(side)
	return err == nil
}
