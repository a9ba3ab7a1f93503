package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/ChizhovVadim/chesstack/pkg/shell"
)

const (
	name = "Chesstack"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgDepth    int
	flgSeed     int64
)

func main() {
	flag.IntVar(&flgDepth, "depth", 3, "search depth")
	flag.Int64Var(&flgSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"Seed", flgSeed,
	)

	var options = engine.NewOptions()
	options.Depth = flgDepth

	var protocol = shell.New(name, versionName, options,
		rand.New(rand.NewSource(flgSeed)), os.Stdout)
	var err = shell.RunCli(context.Background(), logger, os.Stdin, protocol)
	if err != nil {
		logger.Println(err)
	}
}
