package common

var pieceValues = [KindCount]int{
	King:        400,
	Queen:       900,
	Rook:        500,
	Bishop:      330,
	Knight:      320,
	Pawn:        100,
	Amazon:      1300,
	Grasshopper: 200,
	Knightrider: 400,
	Archbishop:  650,
	Dabbaba:     250,
	Alfil:       250,
	Ferz:        200,
	Centaur:     450,
	Camel:       300,
	TempestRook: 600,
}

// PieceValue is the base material value of a kind.
func PieceValue(k PieceKind) int {
	if !k.IsValid() {
		return 0
	}
	return pieceValues[k]
}
