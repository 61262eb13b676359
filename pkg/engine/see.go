package engine

import (
	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

var seeValues = [King + 1]int{Pawn: 100, Knight: 325, Bishop: 325, Rook: 500, Queen: 975, King: 20000}

// see plays out the captures on the target square of mv, cheapest attacker
// first, and returns the material balance in centipawns for the mover when
// either side may stop capturing. Pins are ignored.
func see(p *Position, mv Move) int {
	if mv.IsCastling() {
		return 0
	}
	var to = mv.To()
	var occ = p.Occupied() &^ Bit(mv.From())
	if mv.Kind() == MoveEnPassant {
		occ &^= Bit(to ^ 8)
	}

	var gain [32]int
	var onSquare = mv.MovingPiece()
	gain[0] = seeValues[mv.CapturedPiece()]
	if promo := mv.Promotion(); promo != Empty {
		gain[0] += seeValues[promo] - seeValues[Pawn]
		onSquare = promo
	}

	var white = !p.WhiteMove
	var n = 1
	for ; n < len(gain); n++ {
		var attackers = p.AttackersTo(to, occ) & occ & p.Side(white)
		if attackers == 0 {
			break
		}
		var piece, from = cheapest(p, attackers)
		gain[n] = seeValues[onSquare] - gain[n-1]
		onSquare = piece
		occ &^= Bit(from)
		white = !white
	}
	for n--; n > 0; n-- {
		gain[n-1] = -max(-gain[n-1], gain[n])
	}
	return gain[0]
}

func cheapest(p *Position, attackers uint64) (piece, sq int) {
	for piece = Pawn; piece < King; piece++ {
		if b := p.Pieces[piece] & attackers; b != 0 {
			return piece, Lsb(b)
		}
	}
	return King, Lsb(attackers)
}

// SeeGE reports whether the exchange started by mv wins at least threshold
// centipawns.
func SeeGE(p *Position, mv Move, threshold int) bool {
	return see(p, mv) >= threshold
}
