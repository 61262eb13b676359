package engine

import (
	"testing"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

func TestSeeGE(t *testing.T) {
	var tests = []struct {
		fen       string
		move      string
		threshold int
		result    bool
	}{
		// undefended pawn
		{"4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", 1, true},
		// pawn defended by pawn
		{"4k3/8/4p3/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", 0, false},
		// queen takes defended rook
		{"3rk3/3r4/8/8/8/8/8/3QK3 w - - 0 1", "d1d7", 0, false},
		// pawn takes defended knight
		{"4k3/8/2p5/3n4/4P3/8/8/4K3 w - - 0 1", "e4d5", 0, true},
		{"4k3/8/8/8/8/8/8/4K1N1 w - - 0 1", "g1f3", 0, true},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var mv, err2 = p.ParseMove(test.move)
		if err2 != nil {
			t.Fatal(err2)
		}
		if got := SeeGE(&p, mv, test.threshold); got != test.result {
			t.Error(test.fen, test.move, got)
		}
	}
}

func TestTransTable(t *testing.T) {
	var tt = newTransTable(1)
	var p = NewPosition()
	var mv, _ = p.ParseMove("e2e4")
	if _, _, _, _, ok := tt.Read(p.Key); ok {
		t.Fatal("empty table hit")
	}
	tt.Update(p.Key, 5, 42, boundExact, mv)
	var depth, score, bound, move, ok = tt.Read(p.Key)
	if !ok || depth != 5 || score != 42 || bound != boundExact || move != mv {
		t.Error(depth, score, bound, move, ok)
	}
	// same slot, different key
	var other = p.Key ^ (tt.mask + 1)
	if _, _, _, _, ok := tt.Read(other); ok {
		t.Error("key collision accepted")
	}
	tt.Clear()
	if _, _, _, _, ok := tt.Read(p.Key); ok {
		t.Error("hit after clear")
	}
}

func TestMateScoresThroughTT(t *testing.T) {
	for height := 0; height < 10; height++ {
		for _, v := range []int{winIn(3), lossIn(4), 120, -75} {
			if got := valueFromTT(valueToTT(v, height), height); got != v {
				t.Error(v, height, got)
			}
		}
	}
}

func TestSeeValues(t *testing.T) {
	var tests = []struct {
		fen   string
		move  string
		value int
	}{
		{"4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", 100},
		{"4k3/8/4p3/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", -400},
		// the rook behind the queen joins the exchange
		{"3rk3/8/3p4/8/8/8/3Q4/3RK3 w - - 0 1", "d2d6", -375},
		{"3rk3/8/3p4/8/8/8/3R4/3QK3 w - - 0 1", "d2d6", 100},
		{"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", 100},
		{"1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8q", 1200},
		{"4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", 0},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var mv, err2 = p.ParseMove(test.move)
		if err2 != nil {
			t.Fatal(err2)
		}
		if got := see(&p, mv); got != test.value {
			t.Error(test.fen, test.move, got)
		}
	}
}
