package eval

import (
	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

const (
	minorPhase = 4
	rookPhase  = 6
	queenPhase = 12
	totalPhase = 2 * (4*minorPhase + 2*rookPhase + queenPhase)
)

// mobilityBase is the square count a piece is expected to reach.
var mobilityBase = [King + 1]int{Knight: 4, Bishop: 7, Rook: 7, Queen: 14}

type EvaluationService struct {
	Weights
}

func NewEvaluationService() *EvaluationService {
	var es = &EvaluationService{}
	es.Weights.init()
	return es
}

// Evaluate returns a tapered score in centipawns. Positive values favour white.
func (e *EvaluationService) Evaluate(p *Position) int {
	var s = e.side(p, true) - e.side(p, false)

	var phase = minorPhase*PopCount(p.Pieces[Knight]|p.Pieces[Bishop]) +
		rookPhase*PopCount(p.Pieces[Rook]) +
		queenPhase*PopCount(p.Pieces[Queen])
	phase = min(phase, totalPhase)

	return (s.Middle()*phase + s.End()*(totalPhase-phase)) / totalPhase
}

// side sums the terms of one colour from that colour's point of view.
func (e *EvaluationService) side(p *Position, white bool) Score {
	var occ = p.Occupied()
	var own = p.Side(white)
	var safe = ^own &^ PawnAttacksAll(p.PiecesOf(Pawn, !white), !white)
	var idx = SideWhite
	if !white {
		idx = SideBlack
	}

	var s Score
	for piece := Pawn; piece <= King; piece++ {
		for b := p.Pieces[piece] & own; b != 0; b &= b - 1 {
			var sq = Lsb(b)
			// black tables are stored negated
			if white {
				s += e.PST[idx][piece][sq]
			} else {
				s -= e.PST[idx][piece][sq]
			}
			if mobilityBase[piece] != 0 {
				var reach = PopCount(pieceReach(piece, sq, occ) & safe)
				s += e.Mobility[piece] * Score(reach-mobilityBase[piece])
			}
		}
	}
	if MoreThanOne(p.PiecesOf(Bishop, white)) {
		s += e.BishopPair
	}
	return s + e.kingShelter(p, white)
}

func pieceReach(piece, sq int, occ uint64) uint64 {
	switch piece {
	case Knight:
		return KnightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	}
	return QueenAttacks(sq, occ)
}

// kingShelter rewards pawns on the two ranks in front of a king that has left
// the centre files on its back rank.
func (e *EvaluationService) kingShelter(p *Position, white bool) Score {
	var kingSq = p.KingSquare(white)
	if RelativeRank(kingSq, white) != Rank1 {
		return 0
	}
	if f := File(kingSq); f == FileD || f == FileE {
		return 0
	}
	var forward = North
	if !white {
		forward = South
	}
	var king = Bit(kingSq)
	var front = forward(king | East(king) | West(king))
	var front2 = forward(front)
	var pawns = p.PiecesOf(Pawn, white)
	var count = PopCount(pawns & (front | front2))
	var s = e.KingShelter * Score(count)
	if missing := PopCount(front) - count; missing > 0 {
		s += e.KingShelterMissing * Score(missing)
	}
	return s
}
