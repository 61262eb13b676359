package game

import (
	"context"
	"errors"
	"testing"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

func TestStatelessAPI(t *testing.T) {
	var p = NewPosition()
	var moves = LegalMoves(p)
	if len(moves) != 20 {
		t.Fatal(len(moves))
	}

	var record Record
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"} {
		var mv, err = p.ParseMove(lan)
		if err != nil {
			t.Fatal(err)
		}
		var next common.Position
		next, err = ApplyMove(p, mv)
		if err != nil {
			t.Fatal(err)
		}
		record = append(record, Entry{Before: p, Move: mv, After: next})
		p = next
	}
	var state = GameState(p, record)
	if state.Status != Draw || state.DrawReason != Threefold {
		t.Error(state)
	}

	var prev, rest, err = Undo(record)
	if err != nil {
		t.Fatal(err)
	}
	if prev != record[len(record)-1].Before || len(rest) != len(record)-1 {
		t.Error("undo")
	}
	if GameState(prev, rest).Status != Ongoing {
		t.Error(GameState(prev, rest))
	}

	_, _, err = Undo(nil)
	if !errors.Is(err, ErrNoHistory) {
		t.Error(err)
	}
}

func TestApplyMoveRejectsForeignMove(t *testing.T) {
	var p = NewPosition()
	var other, err = common.NewPositionFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var mv common.Move
	mv, err = other.ParseMove("e1d1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = ApplyMove(p, mv)
	if !errors.Is(err, ErrIllegalMove) {
		t.Error(err)
	}
	_, err = ApplyMove(p, common.MoveEmpty)
	if !errors.Is(err, ErrIllegalMove) {
		t.Error(err)
	}
}

func TestStatelessRequestAIMove(t *testing.T) {
	var p, err = common.NewPositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var info common.SearchInfo
	info, err = RequestAIMove(context.Background(), newTestEngine(), p, nil, engine.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if info.BestMove().String() != "a1a8" {
		t.Error(info.BestMove())
	}

	var mated common.Position
	mated, err = common.NewPositionFromFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = RequestAIMove(context.Background(), newTestEngine(), mated, nil, engine.Easy)
	if !errors.Is(err, engine.ErrTerminal) {
		t.Error(err)
	}
}
