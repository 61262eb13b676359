package eval

import (
	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

// Tables are written as seen from white: the first row is rank 8.

var pawnTable = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int16{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int16{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 5, 5, 5, 5, -10,
	-10, 0, 5, 0, 0, 5, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTableMiddle = [64]int16{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingTableEnd = [64]int16{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pieceValue = [King + 1]int16{0, 100, 320, 330, 500, 900, 0}

type Weights struct {
	PST                [2][King + 1][64]Score
	Mobility           [King + 1]Score
	BishopPair         Score
	KingShelter        Score
	KingShelterMissing Score
}

func (w *Weights) init() {
	var middle = [King + 1]*[64]int16{nil, &pawnTable, &knightTable, &bishopTable,
		&rookTable, &queenTable, &kingTableMiddle}
	var end = [King + 1]*[64]int16{nil, &pawnTable, &knightTable, &bishopTable,
		&rookTable, &queenTable, &kingTableEnd}

	for piece := Pawn; piece <= King; piece++ {
		for sq := 0; sq < 64; sq++ {
			var value = int(pieceValue[piece])
			// rows run from rank 8, so a white square reads the flipped index
			var flip = FlipSquare(sq)
			w.PST[SideWhite][piece][sq] = S(value+int(middle[piece][flip]), value+int(end[piece][flip]))
			w.PST[SideBlack][piece][sq] = -S(value+int(middle[piece][sq]), value+int(end[piece][sq]))
		}
	}

	w.Mobility[Knight] = S(4, 4)
	w.Mobility[Bishop] = S(5, 5)
	w.Mobility[Rook] = S(2, 4)
	w.Mobility[Queen] = S(1, 2)
	w.BishopPair = S(30, 50)
	w.KingShelter = S(10, 0)
	w.KingShelterMissing = S(-15, 0)
}
