package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/pawnstorm/pawnstorm/internal/evalbuilder"
	"github.com/pawnstorm/pawnstorm/pkg/console"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
	"github.com/pawnstorm/pawnstorm/pkg/game"
	"github.com/pawnstorm/pawnstorm/pkg/uci"
)

const (
	name   = "Pawnstorm"
	author = "Pawnstorm authors"
)

var (
	versionName = "dev"
	flgEval     string
	flgModel    string
	flgLevel    string
	flgThreads  int
	flgHash     int
	flgSeed     int64
	flgFEN      string
	flgUCI      bool
)

func main() {
	flag.StringVar(&flgEval, "eval", "classic", "evaluation function: classic, material or neural")
	flag.StringVar(&flgModel, "model", "", "path to the neural model file")
	flag.StringVar(&flgLevel, "level", "medium", "difficulty: easy, medium, hard or expert")
	flag.IntVar(&flgThreads, "threads", 1, "search threads")
	flag.IntVar(&flgHash, "hash", 16, "transposition table size in MB")
	flag.Int64Var(&flgSeed, "seed", 1, "random seed for move choice on easy levels")
	flag.StringVar(&flgFEN, "fen", "", "start position")
	flag.BoolVar(&flgUCI, "uci", false, "speak the UCI protocol instead of the console")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"NumCPU", runtime.NumCPU(),
	)

	var err = run(logger)
	if err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	var level, err = engine.ParseDifficulty(flgLevel)
	if err != nil {
		return err
	}
	evalBuilder, err := evalbuilder.Get(flgEval, flgModel, logger)
	if err != nil {
		return err
	}

	var options = engine.NewOptions()
	options.Threads = max(1, min(flgThreads, runtime.NumCPU()))
	options.Hash = max(1, flgHash)
	options.Seed = flgSeed
	var eng = engine.NewEngine(func() engine.Evaluator { return evalBuilder() }, options)

	if flgUCI {
		var protocol = uci.New(name, author, versionName, eng,
			[]uci.Option{
				&uci.IntOption{Name: "Hash", Min: 1, Max: 1 << 12, Value: &eng.Options.Hash},
				&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
				&uci.BoolOption{Name: "NullMovePruning", Value: &eng.Options.NullMovePruning},
				&uci.BoolOption{Name: "LateMoveReduction", Value: &eng.Options.LateMoveReduction},
			}, os.Stdout)
		protocol.Run(logger, os.Stdin)
		return nil
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var manager = game.NewManager(logger)
	var cli = console.New(os.Stdout, logger, manager, eng, evalBuilder(), level)
	if err = cli.Handle(ctx, "new "+flgFEN); err != nil {
		return err
	}
	return cli.Run(ctx, os.Stdin)
}
