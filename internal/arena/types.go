package arena

import (
	"github.com/pawnstorm/pawnstorm/pkg/engine"
	"github.com/pawnstorm/pawnstorm/pkg/game"
)

// Player is one side of a match. Every worker builds its own players,
// an engine serves one search at a time.
type Player struct {
	Name   string
	Engine *engine.Engine
	Level  engine.Difficulty
}

type Config struct {
	Concurrency int
	Openings    []string
	// MaxPlies ends a game as unfinished, zero means no limit.
	MaxPlies int
}

type gameInfo struct {
	opening        string
	playerAIsWhite bool
	gameNumber     int
}

type GameResult struct {
	Number         int
	PlayerAIsWhite bool
	State          game.State
	Plies          int
	PGN            string
}

// Points returns the score of player A: 1, 0.5 or 0. Unfinished games
// count as draws.
func (r GameResult) Points() float64 {
	var white, ok = r.State.Winner()
	if !ok {
		return 0.5
	}
	if white == r.PlayerAIsWhite {
		return 1
	}
	return 0
}
