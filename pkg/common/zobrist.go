package common

// Zobrist keys, filled from a fixed seed so keys are stable between runs.
var zobrist struct {
	pieces [2][King + 1][64]uint64
	castle [16]uint64
	ep     [8]uint64
	black  uint64
}

// splitMix64 is the generator from Java's SplittableRandom.
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	var z = uint64(*s)
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB
	return z ^ z>>31
}

func init() {
	var rnd = splitMix64(20240611)
	for side := range zobrist.pieces {
		for piece := Pawn; piece <= King; piece++ {
			for sq := range zobrist.pieces[side][piece] {
				zobrist.pieces[side][piece][sq] = rnd.next()
			}
		}
	}
	var rights [4]uint64
	for i := range rights {
		rights[i] = rnd.next()
	}
	// a rights set hashes as the xor of its single rights
	for set := range zobrist.castle {
		for i, key := range rights {
			if set&(1<<i) != 0 {
				zobrist.castle[set] ^= key
			}
		}
	}
	for i := range zobrist.ep {
		zobrist.ep[i] = rnd.next()
	}
	zobrist.black = rnd.next()
}

// computeKey hashes the position from scratch. MakeMove keeps Key
// up to date incrementally.
func (p *Position) computeKey() uint64 {
	var key = zobrist.castle[p.CastleRights]
	if !p.WhiteMove {
		key ^= zobrist.black
	}
	if p.EpSquare != SquareNone {
		key ^= zobrist.ep[File(p.EpSquare)]
	}
	for side := range p.Sides {
		for piece := Pawn; piece <= King; piece++ {
			for b := p.Pieces[piece] & p.Sides[side]; b != 0; b &= b - 1 {
				key ^= zobrist.pieces[side][piece][Lsb(b)]
			}
		}
	}
	return key
}
