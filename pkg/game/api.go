package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoHistory    = errors.New("no moves to undo")
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

func NewPosition() common.Position {
	return common.NewPosition()
}

func LegalMoves(p common.Position) []common.Move {
	return p.GenerateLegalMoves()
}

// ApplyMove accepts only members of the legal move set of p.
func ApplyMove(p common.Position, mv common.Move) (common.Position, error) {
	if !p.IsLegalMove(mv) {
		return common.Position{}, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}
	return p.Apply(mv)
}

// RequestAIMove searches p at difficulty d. history holds the positions
// that preceded p and is used for repetition detection.
func RequestAIMove(ctx context.Context, eng *engine.Engine, p common.Position,
	history []common.Position, d engine.Difficulty) (common.SearchInfo, error) {
	var positions = make([]common.Position, 0, len(history)+1)
	positions = append(positions, history...)
	positions = append(positions, p)
	return eng.Choose(ctx, positions, d)
}

func GameState(p common.Position, record Record) State {
	return deriveState(&p, record.befores())
}

// Undo drops the last entry of record and returns the position before it.
func Undo(record Record) (common.Position, Record, error) {
	if len(record) == 0 {
		return common.Position{}, record, ErrNoHistory
	}
	var last = len(record) - 1
	return record[last].Before, record[:last], nil
}
