package engine

import (
	"context"
	"testing"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

func TestParseDifficulty(t *testing.T) {
	var tests = []struct {
		name  string
		level Difficulty
		depth int
	}{
		{"easy", Easy, 2},
		{"Medium", Medium, 3},
		{"HARD", Hard, 4},
		{"expert", Expert, 6},
	}
	for _, test := range tests {
		var d, err = ParseDifficulty(test.name)
		if err != nil {
			t.Fatal(err)
		}
		if d != test.level || d.Limits().Depth != test.depth || d.Limits().MoveTime <= 0 {
			t.Error(test.name, d, d.Limits())
		}
	}
	if _, err := ParseDifficulty("grandmaster"); err == nil {
		t.Error("expected error")
	}
}

func TestChoose(t *testing.T) {
	var p = NewPosition()
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		var e = newTestEngine(1)
		var si, err = e.Choose(context.Background(), []Position{p}, d)
		if err != nil {
			t.Fatal(err)
		}
		if !p.IsLegalMove(si.BestMove()) {
			t.Error(d, si.BestMove())
		}
	}
}

func TestChooseSeeded(t *testing.T) {
	var p = mustPosition(t, "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	var play = func() []Move {
		var e = newTestEngine(1)
		var result []Move
		for i := 0; i < 3; i++ {
			var si, err = e.Choose(context.Background(), []Position{p}, Easy)
			if err != nil {
				t.Fatal(err)
			}
			result = append(result, si.BestMove())
		}
		return result
	}
	var first = play()
	var second = play()
	for i := range first {
		if first[i] != second[i] {
			t.Error(first, second)
		}
	}
}

func TestChooseTakesMate(t *testing.T) {
	var e = newTestEngine(1)
	var p = mustPosition(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	var si, err = e.Choose(context.Background(), []Position{p}, Easy)
	if err != nil {
		t.Fatal(err)
	}
	if si.BestMove().String() != "a1a8" {
		t.Error(si.BestMove())
	}
}
