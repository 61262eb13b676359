package eval

import (
	"testing"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"2r3k1/5ppp/8/8/8/8/5PPP/3R2K1 b - - 0 30",
}

func TestMirrorSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var mirror = MirrorPosition(&p)
		var score = e.Evaluate(&p)
		var mirrorScore = e.Evaluate(&mirror)
		if score != -mirrorScore {
			t.Error(fen, score, mirrorScore)
		}
	}
}

func TestInitialPositionBalanced(t *testing.T) {
	var e = NewEvaluationService()
	var p = NewPosition()
	if score := e.Evaluate(&p); score != 0 {
		t.Error(score)
	}
}

func TestMaterialAdvantage(t *testing.T) {
	var e = NewEvaluationService()
	var p, _ = NewPositionFromFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if score := e.Evaluate(&p); score < 700 {
		t.Error(score)
	}
	p, _ = NewPositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	if score := e.Evaluate(&p); score > -700 {
		t.Error(score)
	}
}

func TestKingShelter(t *testing.T) {
	var e = NewEvaluationService()
	var sheltered, _ = NewPositionFromFEN("6k1/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	var exposed, _ = NewPositionFromFEN("6k1/8/8/8/5PPP/8/8/6K1 w - - 0 1")
	if e.kingShelter(&sheltered, true).Middle() <= e.kingShelter(&exposed, true).Middle() {
		t.Error("shelter not rewarded")
	}
}

func TestScorePacking(t *testing.T) {
	var s = S(-20, 35) + S(7, -50)
	if s.Middle() != -13 || s.End() != -15 {
		t.Error(s)
	}
	s = S(3, -4) * 5
	if s.Middle() != 15 || s.End() != -20 {
		t.Error(s)
	}
}
