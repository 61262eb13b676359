package common

import (
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

// TestMovesAgainstReference compares legal move sets with github.com/notnil/chess.
func TestMovesAgainstReference(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var opt, err2 = chess.FEN(fen)
		if err2 != nil {
			t.Fatal(err2)
		}
		var ref = chess.NewGame(opt).Position()
		compareMoves(t, &p, ref, 2)
	}
}

func compareMoves(t *testing.T, p *Position, ref *chess.Position, depth int) {
	t.Helper()
	var refMoves = ref.ValidMoves()
	var want = make([]string, 0, len(refMoves))
	for _, m := range refMoves {
		want = append(want, m.String())
	}
	var ml = p.GenerateLegalMoves()
	var got = make([]string, 0, len(ml))
	for _, m := range ml {
		got = append(got, m.String())
	}
	sort.Strings(want)
	sort.Strings(got)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("%v\ngot:  %v\nwant: %v", p.String(), got, want)
	}
	if depth <= 1 {
		return
	}
	for _, m := range refMoves {
		var mv, err = p.ParseMove(m.String())
		if err != nil {
			t.Fatal(err)
		}
		var child, _ = p.Apply(mv)
		compareMoves(t, &child, ref.Update(m), depth-1)
	}
}
