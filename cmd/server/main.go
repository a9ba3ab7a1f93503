package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ChizhovVadim/chesstack/internal/server"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
)

var config server.Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.StringVar(&config.Addr, "addr", ":3000", "Listen address")
	flag.StringVar(&config.AllowOrigins, "origins", "*", "CORS allowed origins")
	flag.IntVar(&config.Depth, "depth", 3, "Default analysis depth")
	flag.Int64Var(&config.Seed, "seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	log.Printf("%+v", config)

	if err := config.Validate(); err != nil {
		return err
	}

	var options = engine.NewOptions()
	options.Depth = config.Depth

	var logger = log.New(os.Stderr, "", log.LstdFlags)
	var app = server.NewApp(logger, config, server.NewGameManager(options, config.Seed))
	return app.Listen(config.Addr)
}
