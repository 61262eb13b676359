package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Level is how a difficulty plays: a depth and a wall-clock cap for the
// search, and with Margin > 0 a random pick among the root moves scoring
// within Margin centipawns of the best.
type Level struct {
	Name     string
	Depth    int
	MoveTime time.Duration
	Margin   int
}

var levels = [...]Level{
	Easy:   {"easy", 2, 1 * time.Second, 60},
	Medium: {"medium", 3, 2 * time.Second, 20},
	Hard:   {"hard", 4, 5 * time.Second, 0},
	Expert: {"expert", 6, 10 * time.Second, 0},
}

func (d Difficulty) valid() bool { return d >= Easy && d <= Expert }

func (d Difficulty) String() string {
	if !d.valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return levels[d].Name
}

// Level falls back to Medium for unknown values.
func (d Difficulty) Level() Level {
	if !d.valid() {
		d = Medium
	}
	return levels[d]
}

// Limits is the search budget of the level.
func (d Difficulty) Limits() LimitsType {
	var level = d.Level()
	return LimitsType{
		Depth:    level.Depth,
		MoveTime: int(level.MoveTime.Milliseconds()),
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d := Easy; d <= Expert; d++ {
		if strings.EqualFold(s, levels[d].Name) {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Choose plays a move at difficulty d. Levels with a margin draw the move
// with the engine's seeded generator, so a fixed Seed replays the same game.
func (e *Engine) Choose(ctx context.Context, positions []Position, d Difficulty) (SearchInfo, error) {
	var level = d.Level()
	var o, err = e.run(ctx, SearchParams{
		Positions: positions,
		Limits:    d.Limits(),
	}, level.Margin)
	if err != nil {
		return SearchInfo{}, err
	}
	var info = o.info()
	if level.Margin <= 0 {
		return info, nil
	}

	// root moves outside the margin only carry bounds, never exact scores
	var candidates []rootMove
	for _, rm := range o.roots {
		if rm.score > o.score-level.Margin {
			candidates = append(candidates, rm)
		}
	}
	if len(candidates) == 0 {
		return info, nil
	}
	e.mu.Lock()
	var choice = candidates[e.rnd.Intn(len(candidates))]
	e.mu.Unlock()
	if choice.move != info.BestMove() {
		info.MainLine = []Move{choice.move}
		info.Score = newUciScore(choice.score)
	}
	return info, nil
}
