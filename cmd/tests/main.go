package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pawnstorm/pawnstorm/internal/evalbuilder"
	"github.com/pawnstorm/pawnstorm/internal/tactic"
	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = dispatch(os.Args[1:], os.Stderr)
	if err != nil {
		logger.Fatal(err)
	}
}

// mapPath expands a leading "~/" to the home directory.
func mapPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

func newEngine(evalName string) (*engine.Engine, error) {
	var evalBuilder, err = evalbuilder.Get(evalName, "", logger)
	if err != nil {
		return nil, err
	}
	var options = engine.NewOptions()
	options.Hash = 128
	return engine.NewEngine(func() engine.Evaluator { return evalBuilder() }, options), nil
}

func loadTests(path string) ([]tactic.EpdItem, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return tactic.LoadEpd(file, logger)
}

func runSolveTactic(s suite) error {
	logger.Printf("tactic: %v eval=%v movetime=%v", s.path, s.eval, s.moveTime)

	var tests, err = loadTests(s.path)
	if err != nil {
		return err
	}
	eng, err := newEngine(s.eval)
	if err != nil {
		return err
	}
	res, err := tactic.SolveTactic(context.Background(), logger, tests, eng,
		common.LimitsType{MoveTime: int(s.moveTime.Milliseconds())})
	if err != nil {
		return err
	}
	fmt.Printf("solved %v of %v in %v\n", res.Solved, res.Total, res.Time)
	return nil
}

func runBenchmark(s suite) error {
	logger.Printf("benchmark: %v eval=%v depth=%v", s.path, s.eval, s.depth)

	var tests, err = loadTests(s.path)
	if err != nil {
		return err
	}
	eng, err := newEngine(s.eval)
	if err != nil {
		return err
	}
	var ctx = context.Background()
	var start = time.Now()
	var nodes int64
	for i := range tests {
		var si, err = eng.Search(ctx, common.SearchParams{
			Positions: []common.Position{tests[i].Position},
			Limits:    common.LimitsType{Depth: s.depth},
		})
		if err != nil {
			return err
		}
		nodes += si.Nodes
	}
	var elapsed = time.Since(start)
	fmt.Printf("positions %v nodes %v time %v knps %v\n",
		len(tests), nodes, elapsed.Round(time.Millisecond), nodes/max(1, elapsed.Milliseconds()))
	return nil
}
