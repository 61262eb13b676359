package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

type Game struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	start  common.Position
	record Record
	state  State
}

func New() *Game {
	return newGame(common.NewPosition())
}

func NewFromFEN(fen string) (*Game, error) {
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(p), nil
}

func newGame(start common.Position) *Game {
	var g = &Game{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		start:     start,
	}
	g.state = deriveState(&g.start, nil)
	return g
}

func (g *Game) Position() common.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.current()
}

func (g *Game) Start() common.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.start
}

// Positions returns the start position and every position reached since.
func (g *Game) Positions() []common.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Positions(g.start)
}

func (g *Game) LegalMoves() []common.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.IsOver() {
		return nil
	}
	return g.current().GenerateLegalMoves()
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Game) History() Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	var result = make(Record, len(g.record))
	copy(result, g.record)
	return result
}

func (g *Game) MakeMove(mv common.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.makeMove(mv)
}

func (g *Game) MakeMoveLAN(lan string) (common.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.IsOver() {
		return common.MoveEmpty, fmt.Errorf("%w: %v", ErrGameOver, g.state)
	}
	var mv, err = g.current().ParseMove(lan)
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("%w: %v", ErrIllegalMove, lan)
	}
	return mv, g.makeMove(mv)
}

func (g *Game) makeMove(mv common.Move) error {
	if g.state.IsOver() {
		return fmt.Errorf("%w: %v", ErrGameOver, g.state)
	}
	var before = *g.current()
	var after, err = ApplyMove(before, mv)
	if err != nil {
		return err
	}
	g.record = append(g.record, Entry{
		Before: before,
		Move:   mv,
		After:  after,
		SAN:    before.MoveToSAN(mv),
	})
	g.refresh()
	return nil
}

// RequestAIMove searches the current position without changing the game.
// The game is not locked while the engine thinks.
func (g *Game) RequestAIMove(ctx context.Context, eng *engine.Engine, d engine.Difficulty) (common.SearchInfo, error) {
	g.mu.Lock()
	if g.state.IsOver() {
		var state = g.state
		g.mu.Unlock()
		return common.SearchInfo{}, fmt.Errorf("%w: %v", ErrGameOver, state)
	}
	var positions = g.record.Positions(g.start)
	g.mu.Unlock()
	return eng.Choose(ctx, positions, d)
}

// PlayAIMove searches and applies the chosen move.
func (g *Game) PlayAIMove(ctx context.Context, eng *engine.Engine, d engine.Difficulty) (common.SearchInfo, error) {
	var info, err = g.RequestAIMove(ctx, eng, d)
	if err != nil {
		return info, err
	}
	if err := g.MakeMove(info.BestMove()); err != nil {
		return info, err
	}
	return info, nil
}

// Undo takes back the last move and returns the restored position.
func (g *Game) Undo() (common.Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var p, record, err = Undo(g.record)
	if err != nil {
		return p, err
	}
	g.record = record
	g.refresh()
	return p, nil
}

func (g *Game) current() *common.Position {
	if len(g.record) == 0 {
		return &g.start
	}
	return &g.record[len(g.record)-1].After
}

func (g *Game) refresh() {
	g.state = deriveState(g.current(), g.record.befores())
}
