package common

// Perft counts the leaves of the legal move tree to the given depth.
func Perft(p *Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	var buffer [MaxMoves]OrderedMove
	var next Position
	var nodes = 0
	for _, om := range p.GenerateMoves(buffer[:]) {
		if !p.MakeMove(om.Move, &next) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(&next, depth-1)
		}
	}
	return nodes
}

type PerftEntry struct {
	Move  Move
	Nodes int
}

// PerftDivide splits the perft count by legal root move.
func PerftDivide(p *Position, depth int) []PerftEntry {
	var moves = p.GenerateLegalMoves()
	var result = make([]PerftEntry, 0, len(moves))
	for _, mv := range moves {
		var next, _ = p.Apply(mv)
		result = append(result, PerftEntry{Move: mv, Nodes: Perft(&next, depth-1)})
	}
	return result
}
