package common

import (
	"fmt"
	"time"
)

type Color int

const (
	White Color = iota
	Black
)

const ColorCount = 2

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("bad color %q", s)
}

type PieceKind int

const (
	King PieceKind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	Amazon
	Grasshopper
	Knightrider
	Archbishop
	Dabbaba
	Alfil
	Ferz
	Centaur
	Camel
	TempestRook
)

const (
	KindNone  PieceKind = -1
	KindCount           = 16
)

var kindSymbols = [KindCount]string{
	King:        "K",
	Queen:       "Q",
	Bishop:      "B",
	Knight:      "N",
	Rook:        "R",
	Pawn:        "P",
	Amazon:      "A",
	Grasshopper: "G",
	Knightrider: "Kr",
	Archbishop:  "W",
	Dabbaba:     "D",
	Alfil:       "L",
	Ferz:        "F",
	Centaur:     "C",
	Camel:       "Cl",
	TempestRook: "Tr",
}

func (k PieceKind) IsValid() bool {
	return k >= 0 && k < KindCount
}

func (k PieceKind) String() string {
	if !k.IsValid() {
		return "?"
	}
	return kindSymbols[k]
}

func ParsePieceKind(s string) (PieceKind, error) {
	for k, sym := range kindSymbols {
		if sym == s {
			return PieceKind(k), nil
		}
	}
	return KindNone, fmt.Errorf("bad piece kind %q", s)
}

// Piece describes an occupied square.
type Piece struct {
	Kind      PieceKind
	Color     Color
	Stun      int
	MoveStack int
	IsRoyal   bool
}

type PieceInfo struct {
	Square Square
	Piece
}

// SearchInfo is the read-only projection of a search used by presentation layers.
type SearchInfo struct {
	Score      float64
	BestAction Action
	MainLine   []Action
	Depth      int
	Nodes      int64
	Time       time.Duration
}
