package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"golang.org/x/sync/errgroup"
)

var (
	flgFEN    string
	flgDepth  int
	flgDivide bool
)

func main() {
	flag.StringVar(&flgFEN, "fen", "", "position, initial position by default")
	flag.IntVar(&flgDepth, "depth", 5, "perft depth")
	flag.BoolVar(&flgDivide, "divide", false, "print node counts per root move")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	var err = run(context.Background())
	if err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context) error {
	var p = common.NewPosition()
	if flgFEN != "" {
		var err error
		p, err = common.NewPositionFromFEN(flgFEN)
		if err != nil {
			return err
		}
	}
	if flgDepth < 1 {
		return fmt.Errorf("bad depth %v", flgDepth)
	}

	var start = time.Now()
	var entries, err = divide(ctx, &p, flgDepth)
	if err != nil {
		return err
	}
	var elapsed = time.Since(start)

	var total int
	for _, entry := range entries {
		total += entry.Nodes
		if flgDivide {
			fmt.Printf("%v: %v\n", entry.Move, entry.Nodes)
		}
	}
	fmt.Printf("depth %v nodes %v time %v nps %v\n", flgDepth, total,
		elapsed.Round(time.Millisecond), int(float64(total)/elapsed.Seconds()))
	return nil
}

// divide counts the subtree of every root move on its own goroutine.
func divide(ctx context.Context, p *common.Position, depth int) ([]common.PerftEntry, error) {
	var moves = p.GenerateLegalMoves()
	var entries = make([]common.PerftEntry, len(moves))
	var g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range moves {
		var i = i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var child common.Position
			p.MakeMove(moves[i], &child)
			entries[i] = common.PerftEntry{
				Move:  moves[i],
				Nodes: common.Perft(&child, depth-1),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, nil
}
