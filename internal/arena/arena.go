package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/ChizhovVadim/chesstack/internal/policybuilder"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run plays config.Games games between policyA and policyB, alternating colours.
func Run(
	ctx context.Context,
	logger *log.Logger,
	config Config,
	policyA, policyB policybuilder.Builder,
) (Stat, error) {
	logger.Println("arena started")
	defer logger.Println("arena finished")

	logger.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.Concurrency)

	logger.Printf("%+v\n", config)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat Stat

	g.Go(func() error {
		defer close(gameInfos)
		return scheduleGames(ctx, config.Games, gameInfos)
	})

	g.Go(func() error {
		var err error
		stat, err = showResults(ctx, logger, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, logger, config, policyA, policyB, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stat, err
}

func scheduleGames(
	ctx context.Context,
	games int,
	gameInfos chan<- gameInfo,
) error {
	for i := 0; i < games; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{id: uuid.New(), policyAIsWhite: i%2 == 0, gameNumber: 1 + i}:
		}
	}
	return nil
}

func playGames(
	ctx context.Context,
	logger *log.Logger,
	config Config,
	policyA, policyB policybuilder.Builder,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, logger, config, policyA, policyB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
