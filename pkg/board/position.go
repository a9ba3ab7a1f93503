package board

import (
	"fmt"
	"strings"

	"github.com/ChizhovVadim/chesstack/pkg/common"
)

type cell struct {
	piece    common.Piece
	occupied bool
}

// Position is an in-memory chesstack game state. It is a plain value:
// copying it copies the whole game.
type Position struct {
	cells   [common.SquareCount]cell
	pockets [common.ColorCount][common.KindCount]int
	turn    common.Color
}

var _ common.Position = (*Position)(nil)

var initialPocket = [common.KindCount]int{
	common.King:   1,
	common.Queen:  1,
	common.Bishop: 2,
	common.Knight: 2,
	common.Rook:   2,
	common.Pawn:   8,
}

// NewPosition returns the starting position: an empty board, full pockets, White to move.
func NewPosition() *Position {
	var p = &Position{turn: common.White}
	p.pockets[common.White] = initialPocket
	p.pockets[common.Black] = initialPocket
	return p
}

// NewEmpty returns an empty board with empty pockets.
func NewEmpty() *Position {
	return &Position{turn: common.White}
}

func (p *Position) Put(sq common.Square, piece common.Piece) {
	p.cells[sq] = cell{piece: piece, occupied: true}
}

func (p *Position) Remove(sq common.Square) {
	p.cells[sq] = cell{}
}

func (p *Position) SetPocket(c common.Color, kind common.PieceKind, count int) {
	if count < 0 {
		count = 0
	}
	p.pockets[c][kind] = count
}

func (p *Position) SetTurn(c common.Color) {
	p.turn = c
}

func (p *Position) Turn() common.Color {
	return p.turn
}

func (p *Position) PieceAt(sq common.Square) (common.Piece, bool) {
	if !sq.IsValid() {
		return common.Piece{}, false
	}
	var c = &p.cells[sq]
	return c.piece, c.occupied
}

func (p *Position) Pieces() []common.PieceInfo {
	var result []common.PieceInfo
	for sq := common.Square(0); sq < common.SquareCount; sq++ {
		if p.cells[sq].occupied {
			result = append(result, common.PieceInfo{Square: sq, Piece: p.cells[sq].piece})
		}
	}
	return result
}

func (p *Position) Pocket(c common.Color) [common.KindCount]int {
	return p.pockets[c]
}

func (p *Position) hasRoyal(c common.Color) bool {
	for i := range p.cells {
		var cl = &p.cells[i]
		if cl.occupied && cl.piece.Color == c && cl.piece.IsRoyal {
			return true
		}
	}
	return false
}

func (p *Position) canMove(sq common.Square) (common.Piece, bool) {
	var piece, ok = p.PieceAt(sq)
	if !ok || piece.Color != p.turn || piece.Stun > 0 || piece.MoveStack == 0 {
		return common.Piece{}, false
	}
	return piece, true
}

func (p *Position) LegalMoveTargets(sq common.Square) []common.Square {
	var piece, ok = p.canMove(sq)
	if !ok {
		return nil
	}
	return p.targets(sq, piece)
}

func (p *Position) targets(sq common.Square, piece common.Piece) []common.Square {
	var result []common.Square
	var seen [common.SquareCount]bool
	var add = func(to common.Square) {
		if !seen[to] {
			seen[to] = true
			result = append(result, to)
		}
	}
	for _, chunk := range pieceChunks[piece.Kind][piece.Color] {
		var originFile = sq.File() + chunk.origin.df
		var originRank = sq.Rank() + chunk.origin.dr
		for _, dir := range chunk.dirs {
			for i := 1; i <= chunk.maxDist; i++ {
				var file = originFile + dir.df*i
				var rank = originRank + dir.dr*i
				if !common.IsInBounds(file, rank) {
					break
				}
				var to = common.MakeSquare(file, rank)
				var target = &p.cells[to]
				if chunk.threat == takeJump {
					if !target.occupied {
						continue
					}
					var landFile, landRank = file + dir.df, rank + dir.dr
					if common.IsInBounds(landFile, landRank) {
						var land = common.MakeSquare(landFile, landRank)
						var landing = &p.cells[land]
						if !landing.occupied || landing.piece.Color != piece.Color {
							add(land)
						}
					}
					break
				}
				if !target.occupied {
					if chunk.threat != takeOnly {
						add(to)
					}
					continue
				}
				if target.piece.Color != piece.Color && chunk.threat != moveOnly {
					add(to)
				}
				break
			}
		}
	}
	return result
}

func (p *Position) isTarget(from, to common.Square) (common.Piece, bool) {
	var piece, ok = p.canMove(from)
	if !ok || !to.IsValid() {
		return common.Piece{}, false
	}
	for _, sq := range p.targets(from, piece) {
		if sq == to {
			return piece, true
		}
	}
	return common.Piece{}, false
}

func (p *Position) PromotionChoices(from, to common.Square) []common.PieceKind {
	var piece, ok = p.isTarget(from, to)
	if !ok || !isPromotionSquare(piece.Kind, piece.Color, to) {
		return nil
	}
	var result = make([]common.PieceKind, len(promotionPool))
	copy(result, promotionPool)
	return result
}

func (p *Position) canDrop(c common.Color, kind common.PieceKind, sq common.Square) bool {
	return kind.IsValid() && sq.IsValid() &&
		p.pockets[c][kind] > 0 &&
		!p.cells[sq].occupied &&
		!isPromotionSquare(kind, c, sq)
}

func (p *Position) LegalDrops(c common.Color) []common.Action {
	var result []common.Action
	for kind := common.PieceKind(0); kind < common.KindCount; kind++ {
		if p.pockets[c][kind] <= 0 {
			continue
		}
		for sq := common.Square(0); sq < common.SquareCount; sq++ {
			if p.canDrop(c, kind, sq) {
				result = append(result, common.NewDrop(kind, sq))
			}
		}
	}
	return result
}

func (p *Position) LegalSuccessions(c common.Color) []common.Square {
	if p.hasRoyal(c) {
		return nil
	}
	var result []common.Square
	for sq := common.Square(0); sq < common.SquareCount; sq++ {
		var cl = &p.cells[sq]
		if cl.occupied && cl.piece.Color == c {
			result = append(result, sq)
		}
	}
	return result
}

func (p *Position) Apply(a common.Action) bool {
	switch a.Type() {
	case common.ActionMove, common.ActionPromote:
		return p.applyMove(a)
	case common.ActionDrop:
		if !p.canDrop(p.turn, a.Kind(), a.Square()) {
			return false
		}
		p.pockets[p.turn][a.Kind()]--
		p.Put(a.Square(), common.Piece{
			Kind:    a.Kind(),
			Color:   p.turn,
			Stun:    dropStun(a.Kind(), p.turn, a.Square()),
			IsRoyal: a.Kind() == common.King,
		})
		return true
	case common.ActionSuccession:
		var sq = a.Square()
		var piece, ok = p.PieceAt(sq)
		if !ok || piece.Color != p.turn || piece.IsRoyal || p.hasRoyal(p.turn) {
			return false
		}
		p.cells[sq].piece.IsRoyal = true
		return true
	}
	return false
}

func (p *Position) applyMove(a common.Action) bool {
	var from, to = a.From(), a.To()
	var piece, ok = p.isTarget(from, to)
	if !ok {
		return false
	}
	var promotion = isPromotionSquare(piece.Kind, piece.Color, to)
	if promotion != (a.Type() == common.ActionPromote) {
		return false
	}
	if promotion && !containsKind(promotionPool, a.Kind()) {
		return false
	}
	if captured, ok := p.PieceAt(to); ok {
		p.pockets[piece.Color][captured.Kind]++
		piece.Stun += captured.Stun
		piece.MoveStack += captured.MoveStack
	}
	if piece.MoveStack > 0 {
		piece.MoveStack--
	}
	if promotion {
		piece.Kind = a.Kind()
	}
	p.Remove(from)
	p.Put(to, piece)
	return true
}

func (p *Position) EndTurn() {
	for i := range p.cells {
		var cl = &p.cells[i]
		if cl.occupied && cl.piece.Color == p.turn && cl.piece.Stun > 0 {
			cl.piece.Stun--
			cl.piece.MoveStack++
		}
	}
	p.turn = p.turn.Opposite()
}

func (p *Position) Snapshot() common.Snapshot {
	return *p
}

func (p *Position) Restore(s common.Snapshot) {
	var saved, ok = s.(Position)
	if !ok {
		panic(fmt.Errorf("board: foreign snapshot %T", s))
	}
	*p = saved
}

func containsKind(kinds []common.PieceKind, kind common.PieceKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *Position) String() string {
	var sb = &strings.Builder{}
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		fmt.Fprintf(sb, "%d ", rank+1)
		for file := common.FileA; file <= common.FileH; file++ {
			var cl = &p.cells[common.MakeSquare(file, rank)]
			if !cl.occupied {
				sb.WriteString(" . ")
				continue
			}
			var sym = cl.piece.Kind.String()
			if cl.piece.Color == common.Black {
				sym = strings.ToLower(sym)
			}
			if cl.piece.IsRoyal {
				sym += "*"
			}
			fmt.Fprintf(sb, "%-3s", sym)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	for c := common.White; c <= common.Black; c++ {
		fmt.Fprintf(sb, "%v pocket:", c)
		for kind := common.PieceKind(0); kind < common.KindCount; kind++ {
			if n := p.pockets[c][kind]; n > 0 {
				fmt.Fprintf(sb, " %v%d", kind, n)
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "turn: %v\n", p.turn)
	return sb.String()
}
