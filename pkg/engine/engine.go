package engine

import (
	"math/rand"
	"time"

	"github.com/ChizhovVadim/chesstack/pkg/common"
)

// Engine is the negamax player. It owns no position state of its own: every
// search leaves the shared position exactly as it found it.
type Engine struct {
	Options
	color     common.Color
	position  common.Position
	evaluator Evaluator
	rnd       *rand.Rand
	nodes     int64
	stack     []pv
}

type pv struct {
	items []common.Action
}

func NewEngine(p common.Position, color common.Color, evaluator Evaluator,
	options Options, rnd *rand.Rand) *Engine {
	return &Engine{
		Options:   options,
		color:     color,
		position:  p,
		evaluator: evaluator,
		rnd:       rnd,
	}
}

func (e *Engine) Color() common.Color {
	return e.color
}

// Nodes is the node count of the last search.
func (e *Engine) Nodes() int64 {
	return e.nodes
}

func (e *Engine) Play(side common.Color) (common.Action, error) {
	if side != e.color || e.position.Turn() != side {
		return common.ActionEmpty, ErrNotYourTurn
	}
	var action = common.ActionEmpty
	if e.FullSearch {
		action = e.Analyze(e.Depth).BestAction
	}
	// a depth 0 search has no principal variation
	if action.IsEmpty() {
		action = e.selectQuick()
	}
	if action.IsEmpty() {
		return common.ActionEmpty, ErrNoLegalActions
	}
	return ApplyAction(e.position, action)
}

func (e *Engine) TryBestMove(side common.Color) bool {
	var _, err = e.Play(side)
	return err == nil
}

// Analyze searches the current position to depth and reports the score from
// the engine's point of view together with the best line. The line starts
// with an action of the side to move, which is the opponent when the engine
// is not on move.
func (e *Engine) Analyze(depth int) common.SearchInfo {
	var start = time.Now()
	if depth < 0 {
		depth = 0
	}
	e.nodes = 0
	e.stack = make([]pv, depth+2)
	var multiplier = 1.0
	if e.position.Turn() != e.color {
		multiplier = -1
	}
	var score = e.negamax(depth, -valueInfinity, valueInfinity, multiplier, 0)
	var result = common.SearchInfo{
		Score:      multiplier * score,
		BestAction: common.ActionEmpty,
		MainLine:   e.stack[0].toSlice(),
		Depth:      depth,
		Nodes:      e.nodes,
		Time:       time.Since(start),
	}
	if len(result.MainLine) != 0 {
		result.BestAction = result.MainLine[0]
	}
	return result
}

// PrincipalVariation is the best known continuation at depth.
func (e *Engine) PrincipalVariation(depth int) []common.Action {
	return e.Analyze(depth).MainLine
}

func (pv *pv) clear() {
	pv.items = pv.items[:0]
}

func (pv *pv) assign(a common.Action, child *pv) {
	pv.items = append(pv.items[:0], a)
	pv.items = append(pv.items, child.items...)
}

func (pv *pv) toSlice() []common.Action {
	var result = make([]common.Action, len(pv.items))
	copy(result, pv.items)
	return result
}
