package engine

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

var (
	ErrTerminal   = errors.New("no legal moves")
	errNoPosition = errors.New("no position to search")
)

// Evaluator scores a position in centipawns, positive values favour white.
type Evaluator interface {
	Evaluate(p *Position) int
}

// Engine searches one position at a time. Its table and workers are reused
// between searches, so an Engine must not run two searches at once; calls
// are serialised by an internal lock.
type Engine struct {
	Options
	evalBuilder func() Evaluator
	table       *transTable
	workers     []*worker
	rnd         *rand.Rand
	mu          sync.Mutex

	// per search
	clock *clock
	seen  map[uint64]bool
}

// NewEngine takes a factory so that every worker owns its evaluator.
func NewEngine(evalBuilder func() Evaluator, options Options) *Engine {
	return &Engine{
		Options:     options,
		evalBuilder: evalBuilder,
	}
}

// Prepare applies changed options. Search calls it too.
func (e *Engine) Prepare() {
	e.Threads = max(1, e.Threads)
	if e.table == nil || e.table.Size() != e.Hash {
		e.table = newTransTable(e.Hash)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(e.Seed))
	}
	for len(e.workers) < e.Threads {
		e.workers = append(e.workers, &worker{engine: e, eval: e.evalBuilder()})
	}
	e.workers = e.workers[:e.Threads]
}

// Search runs iterative deepening on the last of params.Positions. The table
// and the move ordering statistics are reset first, so equal input with
// Threads == 1 and a depth limit gives equal output.
func (e *Engine) Search(ctx context.Context, params SearchParams) (SearchInfo, error) {
	var r, err = e.run(ctx, params, 0)
	if err != nil {
		return SearchInfo{}, err
	}
	return r.info(), nil
}

// outcome is the last iteration the main worker completed.
type outcome struct {
	depth int
	score int
	line  []Move
	roots []rootMove
	nodes int64
	start time.Time
}

func (o *outcome) info() SearchInfo {
	return SearchInfo{
		Score:    newUciScore(o.score),
		Depth:    o.depth,
		Nodes:    o.nodes,
		Time:     time.Since(o.start),
		MainLine: o.line,
	}
}

// run searches with every worker. Helpers start one ply deeper on odd
// indexes and only feed the shared table; the result is the main worker's.
func (e *Engine) run(ctx context.Context, params SearchParams, margin int) (outcome, error) {
	if len(params.Positions) == 0 {
		return outcome{}, errNoPosition
	}
	var root = params.Positions[len(params.Positions)-1]
	if !root.HasLegalMove() {
		return outcome{}, ErrTerminal
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.Prepare()
	e.table.Clear()
	e.clock = newClock(ctx, params.Limits)
	defer e.clock.release()
	e.seen = gameKeys(params.Positions)

	for _, w := range e.workers {
		w.reset(&root, margin)
	}
	var main = e.workers[0]
	main.progress = params.Progress

	var g errgroup.Group
	g.Go(func() error {
		defer e.clock.stopAll()
		main.iterate(1, true)
		return nil
	})
	for i := 1; i < len(e.workers); i++ {
		var w, first = e.workers[i], 1 + i%2
		g.Go(func() error {
			w.iterate(first, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcome{}, err
	}

	var result = main.result
	result.start = e.clock.start
	result.nodes = e.totalNodes()
	if len(result.line) == 0 {
		// nothing completed, fall back to the best ordered root move
		result.line = []Move{main.roots[0].move}
		result.roots = main.roots
	}
	return result, nil
}

func (e *Engine) totalNodes() int64 {
	var total int64
	for _, w := range e.workers {
		total += w.nodes.Load()
	}
	return total
}

// gameKeys collects the game positions before the root that a search line
// can repeat, i.e. those after the last irreversible move.
func gameKeys(positions []Position) map[uint64]bool {
	var keys = make(map[uint64]bool)
	for i := len(positions) - 2; i >= 0; i-- {
		if positions[i+1].Rule50 == 0 {
			break
		}
		keys[positions[i].Key] = true
	}
	return keys
}
