package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ChizhovVadim/chesstack/internal/arena"
	"github.com/ChizhovVadim/chesstack/internal/policybuilder"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
)

type Config struct {
	arena.Config
	PolicyA string
	PolicyB string
	Depth   int
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of threads")
	flag.IntVar(&config.Games, "games", 100, "Number of games")
	flag.IntVar(&config.MaxPlies, "maxplies", 400, "Game length limit, longer games are draws")
	flag.Int64Var(&config.Seed, "seed", time.Now().UnixNano(), "Random seed")
	flag.StringVar(&config.PolicyA, "a", "negamax", "First bot")
	flag.StringVar(&config.PolicyB, "b", "weighted", "Second bot")
	flag.IntVar(&config.Depth, "depth", 2, "Search depth of the search bot")
	flag.Parse()

	log.Printf("%+v", config)

	var options = engine.NewOptions()
	options.Depth = config.Depth

	var policyA, err = policybuilder.Get(config.PolicyA, options)
	if err != nil {
		return err
	}
	policyB, err := policybuilder.Get(config.PolicyB, options)
	if err != nil {
		return err
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var logger = log.New(os.Stderr, "", log.LstdFlags)
	stat, err := arena.Run(ctx, logger, config.Config, policyA, policyB)
	if err != nil {
		return err
	}
	log.Printf("%+v", stat)
	return nil
}
