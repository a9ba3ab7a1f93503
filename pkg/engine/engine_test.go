package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ChizhovVadim/chesstack/pkg/board"
	"github.com/ChizhovVadim/chesstack/pkg/common"
	"github.com/ChizhovVadim/chesstack/pkg/eval/material"
)

func sq(s string) common.Square {
	var result, err = common.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return result
}

func newTestEngine(p common.Position, color common.Color, seed int64) *Engine {
	return NewEngine(p, color, material.NewEvaluationService(), NewOptions(),
		rand.New(rand.NewSource(seed)))
}

// smallPosition has few legal actions on both sides and empty pockets.
func smallPosition() *board.Position {
	var p = board.NewEmpty()
	p.Put(sq("a1"), common.Piece{Kind: common.King, Color: common.White, MoveStack: 1, IsRoyal: true})
	p.Put(sq("a8"), common.Piece{Kind: common.Knight, Color: common.White, MoveStack: 2})
	p.Put(sq("h8"), common.Piece{Kind: common.King, Color: common.Black, MoveStack: 1, IsRoyal: true})
	p.Put(sq("h1"), common.Piece{Kind: common.Ferz, Color: common.Black, MoveStack: 1})
	p.Put(sq("c7"), common.Piece{Kind: common.Pawn, Color: common.Black, Stun: 2})
	return p
}

func plainNegamax(p common.Position, ev Evaluator, root common.Color, depth int, multiplier float64) float64 {
	if depth == 0 {
		return multiplier * ev.Evaluate(p, root)
	}
	var actions = AllLegalActions(p, p.Turn())
	if len(actions) == 0 {
		return multiplier * ev.Evaluate(p, root)
	}
	var snapshot = p.Snapshot()
	var best = math.Inf(-1)
	for _, a := range actions {
		p.Restore(snapshot)
		if !p.Apply(a) {
			continue
		}
		p.EndTurn()
		var score = -plainNegamax(p, ev, root, depth-1, -multiplier)
		if score > best {
			best = score
		}
	}
	p.Restore(snapshot)
	return best
}

func TestAllLegalActionsOrder(t *testing.T) {
	var p = board.NewEmpty()
	p.Put(sq("e7"), common.Piece{Kind: common.Pawn, Color: common.White, MoveStack: 1})
	p.Put(sq("a1"), common.Piece{Kind: common.Knight, Color: common.White, MoveStack: 1})
	p.SetPocket(common.White, common.Rook, 1)
	var actions = AllLegalActions(p, common.White)

	var want = []common.Action{
		common.NewMove(sq("a1"), sq("b3")),
		common.NewMove(sq("a1"), sq("c2")),
		common.NewPromote(sq("e7"), sq("e8"), common.Queen),
		common.NewPromote(sq("e7"), sq("e8"), common.Rook),
		common.NewPromote(sq("e7"), sq("e8"), common.Bishop),
		common.NewPromote(sq("e7"), sq("e8"), common.Knight),
	}
	// 62 empty squares for the rook drop, then the two successions
	if len(actions) != len(want)+62+2 {
		t.Fatal(len(actions), actions)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Error(i, actions[i], want[i])
		}
	}
	if actions[len(want)] != common.NewDrop(common.Rook, sq("b1")) {
		t.Error("drops must follow moves", actions[len(want)])
	}
	var last = actions[len(actions)-1]
	if last.Type() != common.ActionSuccession || last.Square() != sq("e7") {
		t.Error("successions must come last", last)
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	var p = smallPosition()
	p.SetPocket(common.White, common.Ferz, 1)
	p.SetPocket(common.Black, common.Dabbaba, 1)
	var before = *p
	var e = newTestEngine(p, common.White, 1)
	for depth := 0; depth <= 3; depth++ {
		e.Analyze(depth)
		if *p != before {
			t.Fatal("position changed at depth", depth)
		}
	}
}

func TestAlphaBetaEquivalence(t *testing.T) {
	var ev = material.NewEvaluationService()
	for depth := 1; depth <= 4; depth++ {
		var p = smallPosition()
		var e = newTestEngine(p, common.White, 1)
		e.stack = make([]pv, depth+2)
		var pruned = e.negamax(depth, -valueInfinity, valueInfinity, 1, 0)
		var full = plainNegamax(p, ev, common.White, depth, 1)
		if pruned != full {
			t.Error(depth, pruned, full)
		}
	}
}

func TestNoLegalActionsTerminal(t *testing.T) {
	var p = board.NewEmpty()
	p.Put(sq("d4"), common.Piece{Kind: common.Knight, Color: common.White, Stun: 2, IsRoyal: true})
	p.Put(sq("h8"), common.Piece{Kind: common.Queen, Color: common.Black, MoveStack: 3})
	var ev = material.NewEvaluationService()
	if len(AllLegalActions(p, common.White)) != 0 {
		t.Fatal("white must have no actions")
	}
	for _, multiplier := range []float64{1, -1} {
		for depth := 0; depth <= 3; depth++ {
			var e = newTestEngine(p, common.Black, 1)
			e.stack = make([]pv, depth+2)
			var got = e.negamax(depth, -valueInfinity, valueInfinity, multiplier, 0)
			var want = multiplier * ev.Evaluate(p, common.Black)
			if got != want {
				t.Error(depth, multiplier, got, want)
			}
		}
	}
}

func TestCapturePreference(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		var p = board.NewEmpty()
		p.Put(sq("d4"), common.Piece{Kind: common.Pawn, Color: common.White, MoveStack: 1, IsRoyal: true})
		p.Put(sq("e5"), common.Piece{Kind: common.Queen, Color: common.Black, Stun: 5})
		var e = newTestEngine(p, common.White, seed)
		var action, err = e.Play(common.White)
		if err != nil {
			t.Fatal(err)
		}
		if action != common.NewMove(sq("d4"), sq("e5")) {
			t.Fatal("capture not chosen", seed, action)
		}
		if p.Pocket(common.White)[common.Queen] != 1 {
			t.Error("captured queen not pocketed")
		}
	}
}

func TestCaptureKey(t *testing.T) {
	var p = board.NewEmpty()
	p.Put(sq("d4"), common.Piece{Kind: common.Pawn, Color: common.White, MoveStack: 1, IsRoyal: true})
	p.Put(sq("e5"), common.Piece{Kind: common.Queen, Color: common.Black, Stun: 5})
	var e = newTestEngine(p, common.White, 0)
	var keys = make(map[common.Action]float64)
	for _, c := range e.candidates(common.White) {
		keys[c.action] = c.key
	}
	var capture = keys[common.NewMove(sq("d4"), sq("e5"))]
	var quiet = keys[common.NewMove(sq("d4"), sq("d5"))]
	if capture != 2*900+100 || quiet != 0 {
		t.Error(capture, quiet)
	}
}

func TestPromotionDefault(t *testing.T) {
	if got := ResolvePromotion([]common.PieceKind{common.Queen, common.Knight}); got != common.Queen {
		t.Error(got)
	}
	if got := ResolvePromotion([]common.PieceKind{common.Knight, common.Queen}); got != common.Queen {
		t.Error(got)
	}
	if got := ResolvePromotion([]common.PieceKind{common.Rook, common.Knight}); got != common.Rook {
		t.Error(got)
	}

	var p = board.NewEmpty()
	p.Put(sq("e7"), common.Piece{Kind: common.Pawn, Color: common.White, MoveStack: 1, IsRoyal: true})
	var e = newTestEngine(p, common.White, 0)
	var action, err = e.Play(common.White)
	if err != nil {
		t.Fatal(err)
	}
	if action != common.NewPromote(sq("e7"), sq("e8"), common.Queen) {
		t.Error(action)
	}
}

func TestDropScoring(t *testing.T) {
	var p = board.NewEmpty()
	p.SetPocket(common.White, common.Pawn, 1)
	p.SetPocket(common.White, common.Knight, 1)
	var e = newTestEngine(p, common.White, 0)
	e.DropLimit = 1000
	var best = map[common.PieceKind]float64{}
	for _, c := range e.candidates(common.White) {
		best[c.action.Kind()] = math.Max(best[c.action.Kind()], c.key)
	}
	if !(best[common.Knight] > best[common.Pawn]) {
		t.Error(best)
	}

	e.DropLimit = NewOptions().DropLimit
	var action, err = e.Play(common.White)
	if err != nil {
		t.Fatal(err)
	}
	if action.Type() != common.ActionDrop || action.Kind() != common.Knight {
		t.Error(action)
	}
}

func TestNotYourTurn(t *testing.T) {
	var p = smallPosition()
	var before = *p
	var e = newTestEngine(p, common.Black, 0)
	if _, err := e.Play(common.Black); !errors.Is(err, ErrNotYourTurn) {
		t.Error(err)
	}
	if e.TryBestMove(common.White) {
		t.Error("engine plays black only")
	}
	if *p != before {
		t.Error("position changed")
	}
}

func TestAnalyze(t *testing.T) {
	var p = board.NewEmpty()
	p.Put(sq("d4"), common.Piece{Kind: common.Pawn, Color: common.White, MoveStack: 1, IsRoyal: true})
	p.Put(sq("e5"), common.Piece{Kind: common.Queen, Color: common.Black, Stun: 5, IsRoyal: true})
	var e = newTestEngine(p, common.White, 0)
	var before = *p
	var info = e.Analyze(2)
	if info.BestAction != common.NewMove(sq("d4"), sq("e5")) {
		t.Error(info.BestAction)
	}
	if len(info.MainLine) == 0 || info.MainLine[0] != info.BestAction {
		t.Error(info.MainLine)
	}
	if info.Nodes == 0 {
		t.Error("nodes not counted")
	}
	if *p != before {
		t.Error("position changed")
	}

	// the same position seen by the other side
	var black = newTestEngine(p, common.Black, 0)
	if got := black.Analyze(2).Score; got != -info.Score {
		t.Error(got, info.Score)
	}
}

func TestFullSearchPlay(t *testing.T) {
	var p = smallPosition()
	var e = newTestEngine(p, common.White, 0)
	e.FullSearch = true
	e.Depth = 2
	var want = e.Analyze(2).BestAction
	var action, err = e.Play(common.White)
	if err != nil {
		t.Fatal(err)
	}
	if action != want {
		t.Error(action, want)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	var p = smallPosition()
	p.SetPocket(common.White, common.Knight, 1)
	p.SetPocket(common.Black, common.Knight, 1)
	var e = newTestEngine(p, common.White, 0)
	var nodes int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nodes += e.Analyze(3).Nodes
	}
	b.ReportMetric(float64(nodes)/b.Elapsed().Seconds(), "nodes/s")
}

func BenchmarkSelectQuick(b *testing.B) {
	var p = board.NewPosition()
	var e = newTestEngine(p, common.White, 0)
	for i := 0; i < b.N; i++ {
		e.selectQuick()
	}
}

func TestFullSearchDepthZero(t *testing.T) {
	var p = smallPosition()
	var e = newTestEngine(p, common.White, 0)
	e.FullSearch = true
	e.Depth = 0
	var action, err = e.Play(common.White)
	if err != nil {
		t.Fatal(err)
	}
	if action.IsEmpty() || p.Turn() != common.White {
		t.Error(action)
	}
	if _, ok := p.PieceAt(action.To()); !ok {
		t.Error("action not applied", action)
	}
}

func TestAnalyzeOpponentToMove(t *testing.T) {
	var p = smallPosition()
	var e = newTestEngine(p, common.Black, 0)
	var info = e.Analyze(1)
	var found = false
	for _, a := range AllLegalActions(p, common.White) {
		if a == info.BestAction {
			found = true
		}
	}
	if !found {
		t.Error("best action is not a move of the side to move", info.BestAction)
	}
}
