package common

const (
	FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH = 0, 1, 2, 3, 4, 5, 6, 7
	Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8 = 0, 1, 2, 3, 4, 5, 6, 7
)

const SquareNone = -1

// Squares are numbered a1 = 0, b1 = 1, ..., h8 = 63.
const (
	SquareA1, SquareB1, SquareC1, SquareD1, SquareE1, SquareF1, SquareG1, SquareH1 = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	SquareA2, SquareB2, SquareC2, SquareD2, SquareE2, SquareF2, SquareG2, SquareH2
	SquareA3, SquareB3, SquareC3, SquareD3, SquareE3, SquareF3, SquareG3, SquareH3
	SquareA4, SquareB4, SquareC4, SquareD4, SquareE4, SquareF4, SquareG4, SquareH4
	SquareA5, SquareB5, SquareC5, SquareD5, SquareE5, SquareF5, SquareG5, SquareH5
	SquareA6, SquareB6, SquareC6, SquareD6, SquareE6, SquareF6, SquareG6, SquareH6
	SquareA7, SquareB7, SquareC7, SquareD7, SquareE7, SquareF7, SquareG7, SquareH7
	SquareA8, SquareB8, SquareC8, SquareD8, SquareE8, SquareF8, SquareG8, SquareH8
)

func MakeSquare(file, rank int) int {
	return rank*8 + file
}

func File(sq int) int { return sq % 8 }

func Rank(sq int) int { return sq / 8 }

// FlipSquare mirrors a square across the middle of the board, a1 <-> a8.
func FlipSquare(sq int) int {
	return MakeSquare(File(sq), Rank8-Rank(sq))
}

// RelativeRank counts ranks from the given side's back rank.
func RelativeRank(sq int, white bool) int {
	if white {
		return Rank(sq)
	}
	return Rank8 - Rank(sq)
}

// IsDarkSquare is true for a1, c1, b2 and every square of their colour.
func IsDarkSquare(sq int) bool {
	return (File(sq)+Rank(sq))%2 == 0
}

func onBoard(file, rank int) bool {
	return file >= FileA && file <= FileH && rank >= Rank1 && rank <= Rank8
}

func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{byte('a' + File(sq)), byte('1' + Rank(sq))})
}

// ParseSquare accepts "e4" style names and "-" for no square.
func ParseSquare(s string) (int, bool) {
	if s == "-" {
		return SquareNone, true
	}
	if len(s) != 2 {
		return SquareNone, false
	}
	var file, rank = int(s[0]) - 'a', int(s[1]) - '1'
	if !onBoard(file, rank) {
		return SquareNone, false
	}
	return MakeSquare(file, rank), true
}
