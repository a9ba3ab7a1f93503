package arena

import (
	"context"
	"log"
	"math"
)

func showResults(
	ctx context.Context,
	logger *log.Logger,
	gameResults <-chan gameResult,
) (Stat, error) {
	var games = 0
	var wins, losses, draws int
	var stat Stat
	for gameResult := range gameResults {
		games++
		logger.Printf("Finished game %v: %v {%v, %v plies}\n",
			gameResult.gameInfo.gameNumber,
			gameResultString(gameResult.result),
			gameResult.comment,
			gameResult.plies)
		if gameResult.result == gameResultDraw {
			draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.policyAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.policyAIsWhite {
			wins++
		} else {
			losses++
		}
		stat = computeStat(wins, losses, draws)
		logger.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			wins, losses, draws, stat.WinningFraction, games)
		logger.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.EloDifference, stat.LOS*100)
	}
	return stat, ctx.Err()
}

//https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Stat {
	var games = wins + losses + draws
	var result = Stat{Wins: wins, Losses: losses, Draws: draws, LOS: 0.5}
	if games == 0 {
		return result
	}
	result.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	result.EloDifference = -math.Log(1/result.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		result.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return result
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
