package engine

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

// pollMask sets how often a worker looks at the clock, in nodes.
const pollMask = 1023

// clock turns the limits of a search into one stop flag read by all workers.
// The flag is raised by the caller's context, the MoveTime deadline, the
// node limit, or the main worker finishing.
type clock struct {
	limits  LimitsType
	start   time.Time
	soft    time.Duration
	ctx     context.Context
	release context.CancelFunc
	stop    atomic.Bool
}

func newClock(ctx context.Context, limits LimitsType) *clock {
	var c = &clock{limits: limits, start: time.Now()}
	if limits.MoveTime > 0 {
		var budget = time.Duration(limits.MoveTime) * time.Millisecond
		// an iteration started after half the budget rarely completes
		c.soft = budget / 2
		c.ctx, c.release = context.WithDeadline(ctx, c.start.Add(budget))
	} else {
		c.ctx, c.release = context.WithCancel(ctx)
	}
	return c
}

func (c *clock) stopped() bool { return c.stop.Load() }

func (c *clock) stopAll() { c.stop.Store(true) }

// poll is called by the workers every pollMask+1 nodes.
func (c *clock) poll(nodes int64) {
	if c.ctx.Err() != nil || c.limits.Nodes > 0 && nodes >= int64(c.limits.Nodes) {
		c.stopAll()
	}
}

// deeper reports whether the main worker starts an iteration at depth after
// the previous one ended with score.
func (c *clock) deeper(depth, score int) bool {
	if c.stopped() || c.ctx.Err() != nil || depth > maxPly {
		return false
	}
	if c.limits.Depth > 0 {
		return depth <= c.limits.Depth
	}
	if c.limits.Infinite {
		return true
	}
	if isMate(score) {
		return false
	}
	return c.soft == 0 || time.Since(c.start) < c.soft
}
