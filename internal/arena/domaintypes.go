package arena

import (
	"github.com/google/uuid"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type Config struct {
	Games       int
	Concurrency int
	MaxPlies    int
	Seed        int64
}

type gameInfo struct {
	id             uuid.UUID
	policyAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	plies    int
	comment  string
	result   int
}

// Stat is the match score from the point of view of policy A.
type Stat struct {
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}
