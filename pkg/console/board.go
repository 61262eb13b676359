package console

import (
	"fmt"
	"io"

	"github.com/pawnstorm/pawnstorm/pkg/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = [2][7]string{
	{".", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{".", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

// PrintPosition draws the board from white's side with rank and file labels.
func PrintPosition(w io.Writer, p *common.Position) {
	for i := 0; i < 64; i++ {
		var sq = common.FlipSquare(i)
		if common.File(sq) == common.FileA {
			fmt.Fprintf(w, "%v ", common.Rank(sq)+1)
		}
		var piece, white = p.PieceAt(sq)
		if white {
			fmt.Fprint(w, chessSymbols[0][piece])
		} else {
			fmt.Fprint(w, chessSymbols[1][piece])
		}
		if common.File(sq) == common.FileH {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}
