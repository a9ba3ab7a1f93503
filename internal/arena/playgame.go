package arena

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/ChizhovVadim/chesstack/internal/policybuilder"
	"github.com/ChizhovVadim/chesstack/pkg/board"
	"github.com/ChizhovVadim/chesstack/pkg/common"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
)

func playGame(
	ctx context.Context,
	logger *log.Logger,
	config Config,
	policyA, policyB policybuilder.Builder,
	info gameInfo,
) (gameResult, error) {

	logger.Printf("Started game %v %v\n", info.gameNumber, info.id)

	var p = board.NewPosition()
	var rnd = rand.New(rand.NewSource(config.Seed + int64(info.gameNumber)))

	var white, black engine.Policy
	if info.policyAIsWhite {
		white = policyA(p, common.White, rnd)
		black = policyB(p, common.Black, rnd)
	} else {
		white = policyB(p, common.White, rnd)
		black = policyA(p, common.Black, rnd)
	}

	for ply := 0; ply < config.MaxPlies; ply++ {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var side = p.Turn()
		var policy = white
		if side == common.Black {
			policy = black
		}
		var _, err = policy.Play(side)
		if err != nil {
			if errors.Is(err, engine.ErrNoLegalActions) {
				var points = gameResultWhiteWins
				if side == common.White {
					points = gameResultBlackWins
				}
				return gameResult{gameInfo: info, plies: ply, comment: "no legal actions", result: points}, nil
			}
			return gameResult{}, fmt.Errorf("game %v ply %v: %w", info.id, ply, err)
		}
		p.EndTurn()
	}
	return gameResult{gameInfo: info, plies: config.MaxPlies, comment: "max plies", result: gameResultDraw}, nil
}
