package tactic

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

type Result struct {
	Solved, Total int
	Time          time.Duration
	Failed        []EpdItem
}

// SolveTactic searches every item with the given limits and counts the
// items whose best move is among the expected ones.
func SolveTactic(ctx context.Context, logger *log.Logger, items []EpdItem,
	eng *engine.Engine, limits common.LimitsType) (Result, error) {
	var result = Result{Total: len(items)}
	var start = time.Now()
	for i := range items {
		var item = &items[i]
		var si, err = eng.Search(ctx, common.SearchParams{
			Positions: []common.Position{item.Position},
			Limits:    limits,
		})
		if err != nil {
			return result, err
		}
		if slices.Contains(item.BestMoves, si.BestMove()) {
			result.Solved++
		} else {
			result.Failed = append(result.Failed, *item)
			if logger != nil {
				logger.Println("failed", item.Content, "got", si.BestMove(), "score", si.Score)
			}
		}
	}
	result.Time = time.Since(start)
	return result, nil
}
