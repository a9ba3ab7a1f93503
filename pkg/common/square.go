package common

import (
	"fmt"
	"strings"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	BoardSize   = 8
	SquareCount = BoardSize * BoardSize
)

// Square packs file and rank as rank*8+file.
type Square int

const SquareNone Square = -1

func MakeSquare(file, rank int) Square {
	return Square((rank << 3) | file)
}

func IsInBounds(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

func (sq Square) File() int {
	return int(sq) & 7
}

func (sq Square) Rank() int {
	return int(sq) >> 3
}

func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SquareCount
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// ManhattanDistanceToCenter measures the distance to the nearest of the
// four central squares d4, e4, d5, e5.
func ManhattanDistanceToCenter(sq Square) int {
	var file, rank = sq.File(), sq.Rank()
	var df = Min(AbsDelta(file, FileD), AbsDelta(file, FileE))
	var dr = Min(AbsDelta(rank, Rank4), AbsDelta(rank, Rank5))
	return df + dr
}

// InCenter4x4 reports files and ranks 2..5.
func InCenter4x4(sq Square) bool {
	var file, rank = sq.File(), sq.Rank()
	return file >= FileC && file <= FileF && rank >= Rank3 && rank <= Rank6
}

// InCenter2x2 reports files and ranks 3..4.
func InCenter2x2(sq Square) bool {
	var file, rank = sq.File(), sq.Rank()
	return file >= FileD && file <= FileE && rank >= Rank4 && rank <= Rank5
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string(fileNames[sq.File()]) + string(rankNames[sq.Rank()])
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	return MakeSquare(file, rank), nil
}
