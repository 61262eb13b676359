package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/pawnstorm/pawnstorm/internal/arena"
	"github.com/pawnstorm/pawnstorm/internal/evalbuilder"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

type Config struct {
	Concurrency int
	LevelA      string
	LevelB      string
	EvalA       string
	EvalB       string
	Model       string
	Openings    string
	MaxPlies    int
	Hash        int
	PGN         string
}

var config Config

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	var err = run(logger)
	if err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "number of games played at once")
	flag.StringVar(&config.LevelA, "a", "hard", "difficulty of player A")
	flag.StringVar(&config.LevelB, "b", "medium", "difficulty of player B")
	flag.StringVar(&config.EvalA, "evala", "classic", "evaluation function of player A")
	flag.StringVar(&config.EvalB, "evalb", "classic", "evaluation function of player B")
	flag.StringVar(&config.Model, "model", "", "path to the neural model file")
	flag.StringVar(&config.Openings, "openings", "", "file with one FEN or PGN opening per line")
	flag.IntVar(&config.MaxPlies, "maxplies", 300, "plies after which a game is scored as a draw")
	flag.IntVar(&config.Hash, "hash", 16, "transposition table size in MB per engine")
	flag.StringVar(&config.PGN, "pgn", "", "file to append finished games to")
	flag.Parse()

	logger.Printf("%+v", config)

	var newPlayerA, err = newPlayer(logger, config.LevelA, config.EvalA)
	if err != nil {
		return err
	}
	newPlayerB, err := newPlayer(logger, config.LevelB, config.EvalB)
	if err != nil {
		return err
	}

	var openings []string
	if config.Openings == "" {
		openings, err = arena.DefaultOpenings()
	} else {
		var text []byte
		text, err = os.ReadFile(config.Openings)
		if err == nil {
			openings, err = arena.ParseOpenings(string(text))
		}
	}
	if err != nil {
		return err
	}

	var pgnFile *os.File
	if config.PGN != "" {
		pgnFile, err = os.OpenFile(config.PGN, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer pgnFile.Close()
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	stats, err := arena.Run(ctx, logger,
		arena.Config{
			Concurrency: config.Concurrency,
			Openings:    openings,
			MaxPlies:    config.MaxPlies,
		},
		newPlayerA, newPlayerB,
		func(res arena.GameResult, _ arena.Stats) {
			if pgnFile != nil {
				fmt.Fprintf(pgnFile, "%v\n\n", strings.TrimSpace(res.PGN))
			}
		})
	logger.Printf("Elo difference: %.1f, LOS: %.1f %%\n", stats.EloDifference, stats.LOS*100)
	return err
}

func newPlayer(logger *log.Logger, levelName, evalName string) (func() arena.Player, error) {
	var level, err = engine.ParseDifficulty(levelName)
	if err != nil {
		return nil, err
	}
	evalBuilder, err := evalbuilder.Get(evalName, config.Model, logger)
	if err != nil {
		return nil, err
	}
	return func() arena.Player {
		var options = engine.NewOptions()
		options.Hash = config.Hash
		return arena.Player{
			Name:   evalName + "/" + level.String(),
			Engine: engine.NewEngine(func() engine.Evaluator { return evalBuilder() }, options),
			Level:  level,
		}
	}, nil
}
