package common

// Snapshot is an opaque copy of a position produced by Position.Snapshot.
type Snapshot interface{}

// Position is the contract the move-selection code needs from a game engine.
// Implementations are not safe for concurrent use.
type Position interface {
	Turn() Color
	Pieces() []PieceInfo
	PieceAt(sq Square) (Piece, bool)
	Pocket(c Color) [KindCount]int

	// LegalMoveTargets is empty unless sq holds a piece of the side to move.
	LegalMoveTargets(sq Square) []Square
	// PromotionChoices is non-empty only when from->to is a legal promotion.
	PromotionChoices(from, to Square) []PieceKind
	LegalDrops(c Color) []Action
	LegalSuccessions(c Color) []Square

	// Apply executes a legal action. It reports false and leaves the
	// position unchanged otherwise.
	Apply(a Action) bool
	// EndTurn advances fatigue counters of the side to move and passes the turn.
	EndTurn()

	Snapshot() Snapshot
	Restore(s Snapshot)
}
