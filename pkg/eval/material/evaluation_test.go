package eval

import (
	"testing"

	"github.com/pawnstorm/pawnstorm/pkg/common"
)

func TestMaterial(t *testing.T) {
	var tests = []struct {
		fen   string
		score int
	}{
		{common.InitialPositionFen, 0},
		{"rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 900},
		{"4k3/8/8/8/8/8/8/3rK3 w - - 0 1", -500},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = common.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Evaluate(&p); got != test.score {
			t.Error(test.fen, got)
		}
	}
}
