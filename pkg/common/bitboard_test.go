package common

import (
	"math/rand"
	"testing"
)

// walkAttacks follows the steps one square at a time until a blocker.
func walkAttacks(sq int, occ uint64, steps [][2]int) uint64 {
	var result uint64
	for _, step := range steps {
		for f, r := File(sq)+step[0], Rank(sq)+step[1]; onBoard(f, r); f, r = f+step[0], r+step[1] {
			result |= Bit(MakeSquare(f, r))
			if occ&Bit(MakeSquare(f, r)) != 0 {
				break
			}
		}
	}
	return result
}

func TestSliderAttacks(t *testing.T) {
	var rookSteps = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	var bishopSteps = [][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	var rnd = rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		var sq = rnd.Intn(64)
		var occ = rnd.Uint64() & rnd.Uint64()
		if got, want := RookAttacks(sq, occ), walkAttacks(sq, occ, rookSteps); got != want {
			t.Fatalf("rook %v occ %x: %x != %x", SquareName(sq), occ, got, want)
		}
		if got, want := BishopAttacks(sq, occ), walkAttacks(sq, occ, bishopSteps); got != want {
			t.Fatalf("bishop %v occ %x: %x != %x", SquareName(sq), occ, got, want)
		}
	}
}

func TestLeaperAttacks(t *testing.T) {
	var tests = []struct {
		sq           int
		knight, king int
	}{
		{SquareA1, 2, 3},
		{SquareH8, 2, 3},
		{SquareB2, 4, 8},
		{SquareE4, 8, 8},
		{SquareH5, 4, 5},
	}
	for _, test := range tests {
		if n := PopCount(KnightAttacks[test.sq]); n != test.knight {
			t.Error(SquareName(test.sq), "knight", n)
		}
		if n := PopCount(KingAttacks[test.sq]); n != test.king {
			t.Error(SquareName(test.sq), "king", n)
		}
	}
	if PawnAttacks(SquareA2, true) != Bit(SquareB3) || PawnAttacks(SquareE7, false) != Bit(SquareD6)|Bit(SquareF6) {
		t.Error("pawn attacks")
	}
}

func TestBetween(t *testing.T) {
	var tests = []struct {
		from, to int
		want     uint64
	}{
		{SquareE1, SquareH1, Bit(SquareF1) | Bit(SquareG1)},
		{SquareA8, SquareD5, Bit(SquareB7) | Bit(SquareC6)},
		{SquareD5, SquareA8, Bit(SquareB7) | Bit(SquareC6)},
		{SquareE1, SquareE2, 0},
		{SquareA1, SquareB3, 0},
	}
	for _, test := range tests {
		if got := Between(test.from, test.to); got != test.want {
			t.Error(SquareName(test.from), SquareName(test.to), got)
		}
	}
}

func TestSquares(t *testing.T) {
	if SquareH8 != 63 || SquareE4 != 28 || FlipSquare(SquareB2) != SquareB7 {
		t.Error(SquareH8, SquareE4)
	}
	if !IsDarkSquare(SquareA1) || IsDarkSquare(SquareH1) || !IsDarkSquare(SquareH8) {
		t.Error("square colours")
	}
	for sq := 0; sq < 64; sq++ {
		if got, ok := ParseSquare(SquareName(sq)); !ok || got != sq {
			t.Error(sq, got)
		}
	}
}
