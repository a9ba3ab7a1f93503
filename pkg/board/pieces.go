package board

import "github.com/ChizhovVadim/chesstack/pkg/common"

type threatType int

const (
	// takeMove moves to empty squares and captures the first enemy on a ray.
	takeMove threatType = iota
	// moveOnly never captures.
	moveOnly
	// takeOnly moves only by capturing.
	takeOnly
	// takeJump hops over the first piece on a ray and lands right behind it.
	takeJump
)

type direction struct {
	df, dr int
}

type moveChunk struct {
	threat  threatType
	origin  direction
	dirs    []direction
	maxDist int
}

var (
	knightDirs  = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	bishopDirs  = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirs    = []direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	allDirs     = []direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	dabbabaDirs = []direction{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
	alfilDirs   = []direction{{2, 2}, {2, -2}, {-2, -2}, {-2, 2}}
	camelDirs   = []direction{{1, 3}, {3, 1}, {3, -1}, {1, -3}, {-1, -3}, {-3, -1}, {-3, 1}, {-1, 3}}
)

const rider = common.BoardSize

var pieceChunks [common.KindCount][common.ColorCount][]moveChunk

var promotionPool = []common.PieceKind{common.Queen, common.Rook, common.Bishop, common.Knight}

func init() {
	var leap = func(dirs []direction) moveChunk {
		return moveChunk{threat: takeMove, dirs: dirs, maxDist: 1}
	}
	var ride = func(dirs []direction) moveChunk {
		return moveChunk{threat: takeMove, dirs: dirs, maxDist: rider}
	}
	var both = func(kind common.PieceKind, chunks ...moveChunk) {
		pieceChunks[kind][common.White] = chunks
		pieceChunks[kind][common.Black] = chunks
	}

	both(common.King, leap(allDirs))
	both(common.Queen, ride(allDirs))
	both(common.Bishop, ride(bishopDirs))
	both(common.Knight, leap(knightDirs))
	both(common.Rook, ride(rookDirs))
	both(common.Amazon, leap(knightDirs), ride(allDirs))
	both(common.Grasshopper, moveChunk{threat: takeJump, dirs: allDirs, maxDist: rider})
	both(common.Knightrider, ride(knightDirs))
	both(common.Archbishop, leap(knightDirs), ride(bishopDirs))
	both(common.Dabbaba, leap(dabbabaDirs))
	both(common.Alfil, leap(alfilDirs))
	both(common.Ferz, leap(bishopDirs))
	both(common.Centaur, leap(allDirs), leap(knightDirs))
	both(common.Camel, leap(camelDirs))
	both(common.TempestRook,
		moveChunk{threat: takeMove, origin: direction{1, 1}, dirs: []direction{{0, 1}, {1, 0}}, maxDist: rider},
		moveChunk{threat: takeMove, origin: direction{1, -1}, dirs: []direction{{1, 0}, {0, -1}}, maxDist: rider},
		moveChunk{threat: takeMove, origin: direction{-1, 1}, dirs: []direction{{0, 1}, {-1, 0}}, maxDist: rider},
		moveChunk{threat: takeMove, origin: direction{-1, -1}, dirs: []direction{{0, -1}, {-1, 0}}, maxDist: rider})

	pieceChunks[common.Pawn][common.White] = []moveChunk{
		{threat: moveOnly, dirs: []direction{{0, 1}}, maxDist: 1},
		{threat: takeOnly, dirs: []direction{{-1, 1}, {1, 1}}, maxDist: 1},
	}
	pieceChunks[common.Pawn][common.Black] = []moveChunk{
		{threat: moveOnly, dirs: []direction{{0, -1}}, maxDist: 1},
		{threat: takeOnly, dirs: []direction{{-1, -1}, {1, -1}}, maxDist: 1},
	}
}

var initialStun = [common.KindCount]int{
	common.King:        4,
	common.Queen:       9,
	common.Bishop:      3,
	common.Knight:      3,
	common.Rook:        5,
	common.Pawn:        1,
	common.Amazon:      13,
	common.Grasshopper: 4,
	common.Knightrider: 7,
	common.Archbishop:  6,
	common.Dabbaba:     2,
	common.Alfil:       2,
	common.Ferz:        1,
	common.Centaur:     5,
	common.Camel:       3,
	common.TempestRook: 7,
}

// dropStun is the fatigue a piece enters the board with. Pawns are
// slower the further they are from the promotion rank.
func dropStun(kind common.PieceKind, c common.Color, sq common.Square) int {
	if kind == common.Pawn {
		if c == common.White {
			return 8 - sq.Rank()
		}
		return sq.Rank() + 1
	}
	return initialStun[kind]
}

func promotionRank(c common.Color) int {
	if c == common.White {
		return common.Rank8
	}
	return common.Rank1
}

func isPromotionSquare(kind common.PieceKind, c common.Color, sq common.Square) bool {
	return kind == common.Pawn && sq.Rank() == promotionRank(c)
}
