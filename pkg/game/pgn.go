package game

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/pawnstorm/pawnstorm/pkg/common"
)

var initialFEN = func() string {
	var p = common.NewPosition()
	return p.String()
}()

// PGN exports the game record. Draws that are claimed rather than automatic
// (threefold, fifty-move) are declared on the exported game.
func (g *Game) PGN() (string, error) {
	g.mu.Lock()
	var start = g.start
	var record = make(Record, len(g.record))
	copy(record, g.record)
	var state = g.state
	var created = g.CreatedAt
	g.mu.Unlock()
	return exportPGN(start, record, state, created)
}

func exportPGN(start common.Position, record Record, state State, created time.Time) (string, error) {
	var options []func(*chess.Game)
	var startFEN = start.String()
	if startFEN != initialFEN {
		var opt, err = chess.FEN(startFEN)
		if err != nil {
			return "", err
		}
		options = append(options, opt)
	}
	var pgn = chess.NewGame(options...)
	pgn.AddTagPair("Event", "pawnstorm game")
	pgn.AddTagPair("Date", created.Format("2006.01.02"))
	pgn.AddTagPair("White", "?")
	pgn.AddTagPair("Black", "?")
	if len(options) != 0 {
		pgn.AddTagPair("SetUp", "1")
		pgn.AddTagPair("FEN", startFEN)
	}
	for i := range record {
		var mv, err = chess.UCINotation{}.Decode(pgn.Position(), record[i].Move.String())
		if err != nil {
			return "", fmt.Errorf("move %d %v: %w", i+1, record[i].Move, err)
		}
		if err = pgn.Move(mv); err != nil {
			return "", fmt.Errorf("move %d %v: %w", i+1, record[i].Move, err)
		}
	}
	if state.Status == Draw && pgn.Outcome() == chess.NoOutcome {
		var err error
		switch state.DrawReason {
		case Threefold:
			err = pgn.Draw(chess.ThreefoldRepetition)
		case FiftyMove:
			err = pgn.Draw(chess.FiftyMoveRule)
		}
		if err != nil {
			return "", fmt.Errorf("declare %v draw: %w", state.DrawReason, err)
		}
	}
	pgn.AddTagPair("Result", string(pgn.Outcome()))
	return pgn.String(), nil
}
