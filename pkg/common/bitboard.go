package common

import "math/bits"

// A bitboard is a uint64 with bit n set for square n.

const (
	fileABits uint64 = 0x0101010101010101
	fileHBits uint64 = fileABits << FileH
	rank1Bits uint64 = 0xFF
)

func FileBB(file int) uint64 { return fileABits << uint(file) }

func RankBB(rank int) uint64 { return rank1Bits << uint(8*rank) }

func Bit(sq int) uint64 { return uint64(1) << uint(sq) }

func PopCount(b uint64) int { return bits.OnesCount64(b) }

// Lsb returns the lowest set square of a non-empty bitboard.
func Lsb(b uint64) int { return bits.TrailingZeros64(b) }

// Msb returns the highest set square of a non-empty bitboard.
func Msb(b uint64) int { return 63 - bits.LeadingZeros64(b) }

func MoreThanOne(b uint64) bool { return b&(b-1) != 0 }

// Set-wise shifts. Squares pushed over the a or h file edge are dropped.

func North(b uint64) uint64     { return b << 8 }
func South(b uint64) uint64     { return b >> 8 }
func East(b uint64) uint64      { return (b &^ fileHBits) << 1 }
func West(b uint64) uint64      { return (b &^ fileABits) >> 1 }
func NorthEast(b uint64) uint64 { return (b &^ fileHBits) << 9 }
func NorthWest(b uint64) uint64 { return (b &^ fileABits) << 7 }
func SouthEast(b uint64) uint64 { return (b &^ fileHBits) >> 7 }
func SouthWest(b uint64) uint64 { return (b &^ fileABits) >> 9 }

// PawnAttacksAll returns every square attacked by the given pawns.
func PawnAttacksAll(pawns uint64, white bool) uint64 {
	if white {
		return NorthEast(pawns) | NorthWest(pawns)
	}
	return SouthEast(pawns) | SouthWest(pawns)
}

// PawnAttacks returns the squares a pawn of the given colour on sq attacks.
func PawnAttacks(sq int, white bool) uint64 {
	return PawnAttacksAll(Bit(sq), white)
}

var (
	KnightAttacks [64]uint64
	KingAttacks   [64]uint64

	// rays[d][sq] holds every square from sq (exclusive) to the board edge
	// in compass direction d.
	rays    [8][64]uint64
	between [64][64]uint64
)

// Compass directions, clockwise from north. The first four run towards
// higher square numbers.
const (
	dirNorth = iota
	dirNorthEast
	dirEast
	dirNorthWest
	dirSouth
	dirSouthWest
	dirWest
	dirSouthEast
)

var compass = [8][2]int{
	dirNorth:     {0, 1},
	dirNorthEast: {1, 1},
	dirEast:      {1, 0},
	dirNorthWest: {-1, 1},
	dirSouth:     {0, -1},
	dirSouthWest: {-1, -1},
	dirWest:      {-1, 0},
	dirSouthEast: {1, -1},
}

var (
	rookDirs   = [4]int{dirNorth, dirEast, dirSouth, dirWest}
	bishopDirs = [4]int{dirNorthEast, dirNorthWest, dirSouthWest, dirSouthEast}
)

// slide cuts every ray at its first occupied square, which stays attacked.
func slide(sq int, occ uint64, dirs *[4]int) uint64 {
	var result uint64
	for _, d := range dirs {
		var ray = rays[d][sq]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if d < dirSouth {
				first = Lsb(blockers)
			} else {
				first = Msb(blockers)
			}
			ray &^= rays[d][first]
		}
		result |= ray
	}
	return result
}

func BishopAttacks(sq int, occ uint64) uint64 { return slide(sq, occ, &bishopDirs) }

func RookAttacks(sq int, occ uint64) uint64 { return slide(sq, occ, &rookDirs) }

func QueenAttacks(sq int, occ uint64) uint64 {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// Between returns the squares strictly between two squares on a common
// line or diagonal, or zero.
func Between(from, to int) uint64 { return between[from][to] }

func attacksFrom(piece, sq int, occ uint64) uint64 {
	switch piece {
	case Knight:
		return KnightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks[sq]
	}
	return 0
}

func init() {
	var knightJumps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	for sq := 0; sq < 64; sq++ {
		var f, r = File(sq), Rank(sq)
		for _, j := range knightJumps {
			if onBoard(f+j[0], r+j[1]) {
				KnightAttacks[sq] |= Bit(MakeSquare(f+j[0], r+j[1]))
			}
		}
		for d, step := range compass {
			if onBoard(f+step[0], r+step[1]) {
				KingAttacks[sq] |= Bit(MakeSquare(f+step[0], r+step[1]))
			}
			for x, y := f+step[0], r+step[1]; onBoard(x, y); x, y = x+step[0], y+step[1] {
				rays[d][sq] |= Bit(MakeSquare(x, y))
			}
		}
	}

	for sq := 0; sq < 64; sq++ {
		for d := range rays {
			for b := rays[d][sq]; b != 0; b &= b - 1 {
				var to = Lsb(b)
				between[sq][to] = rays[d][sq] &^ rays[d][to] &^ Bit(to)
			}
		}
	}
}
