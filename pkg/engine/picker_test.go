package engine

import (
	"testing"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

func TestPickerBands(t *testing.T) {
	// Rxd5 wins a pawn, Qxb6 loses the queen for a pawn
	var p = mustPosition(t, "4k3/p7/1p6/3p4/8/8/1Q6/3RK3 w - - 0 1")
	var w = &worker{}
	w.stack[0].pos = p
	var ttMove = mustMove(t, &p, "e1f2")
	var killer = mustMove(t, &p, "b2c3")
	w.stack[0].killers[0] = killer

	var pk = w.mainPicker(0, ttMove)
	var order []Move
	for m, ok := pk.pick(); ok; m, ok = pk.pick() {
		order = append(order, m)
	}
	if len(order) != len(pk.moves) {
		t.Fatal(len(order), len(pk.moves))
	}
	var want = []string{"e1f2", "d1d5", "b2c3"}
	for i, lan := range want {
		if order[i].String() != lan {
			t.Fatal(i, order)
		}
	}
	if last := order[len(order)-1]; last.String() != "b2b6" {
		t.Error(last, order)
	}
}

func TestNoisyPickerSkipsLosingCaptures(t *testing.T) {
	var p = mustPosition(t, "4k3/p7/1p6/3p4/8/8/1Q6/3RK3 w - - 0 1")
	var w = &worker{}
	w.stack[0].pos = p
	var pk = w.noisyPicker(0)
	if len(pk.moves) != 1 || pk.moves[0].Move.String() != "d1d5" {
		t.Error(pk.moves)
	}
}

func TestRewardQuiet(t *testing.T) {
	var p = NewPosition()
	var w = &worker{}
	w.stack[0].pos = p
	var good = mustMove(t, &p, "g1f3")
	var bad = mustMove(t, &p, "a2a3")
	for i := 0; i < 50; i++ {
		w.rewardQuiet(0, 20, good, []Move{bad, good})
	}
	var h = &w.history[SideWhite]
	if h[good.From()][good.To()] <= 0 || h[bad.From()][bad.To()] >= 0 {
		t.Error(h[good.From()][good.To()], h[bad.From()][bad.To()])
	}
	if h[good.From()][good.To()] > historyMax {
		t.Error("history not bounded")
	}
	if w.stack[0].killers[0] != good {
		t.Error(w.stack[0].killers)
	}
}

func mustMove(t *testing.T, p *Position, lan string) Move {
	t.Helper()
	var mv, err = p.ParseMove(lan)
	if err != nil {
		t.Fatal(err)
	}
	return mv
}
