package arena

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Run plays every opening twice with colours reversed. newPlayerA and
// newPlayerB are called once per worker. onResult, if set, sees every
// finished game in the order games complete.
func Run(
	ctx context.Context,
	logger *log.Logger,
	config Config,
	newPlayerA, newPlayerB func() Player,
	onResult func(GameResult, Stats),
) (Stats, error) {
	if len(config.Openings) == 0 {
		return Stats{}, errors.New("arena: no openings")
	}
	var queue = schedule(config.Openings)
	var workers = min(max(1, config.Concurrency), cap(queue))
	logger.Printf("arena: %v games on %v workers", cap(queue), workers)

	var (
		mu    sync.Mutex
		stats Stats
	)
	var record = func(res GameResult) {
		mu.Lock()
		defer mu.Unlock()
		stats.add(res)
		logger.Printf("game %v: %v {%v}", res.Number, res.State.Result(), res.State)
		logger.Printf("score %v - %v - %v [%.3f] %v",
			stats.Wins, stats.Losses, stats.Draws, stats.WinningFraction, stats.Games())
		if onResult != nil {
			onResult(res, stats)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			var a, b = newPlayerA(), newPlayerB()
			for info := range queue {
				if err := ctx.Err(); err != nil {
					return err
				}
				var res, err = playGame(ctx, a, b, config.MaxPlies, info)
				if err != nil {
					return err
				}
				record(res)
			}
			return nil
		})
	}
	var err = g.Wait()
	return stats, err
}

// schedule returns a closed channel holding every game to play, numbered
// from one. Player A takes white in the odd games.
func schedule(openings []string) chan gameInfo {
	var queue = make(chan gameInfo, 2*len(openings))
	for i, fen := range openings {
		queue <- gameInfo{opening: fen, playerAIsWhite: true, gameNumber: 2*i + 1}
		queue <- gameInfo{opening: fen, playerAIsWhite: false, gameNumber: 2*i + 2}
	}
	close(queue)
	return queue
}
