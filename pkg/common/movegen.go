package common

type moveList struct {
	moves []OrderedMove
	count int
}

func (l *moveList) add(m Move) {
	l.moves[l.count] = OrderedMove{Move: m}
	l.count++
}

var (
	allPromotions = []int{Queen, Rook, Bishop, Knight}
	queenOnly     = []int{Queen}
)

// GenerateMoves writes all pseudo-legal moves into ml, which must hold
// MaxMoves entries. In check, moves other than king moves and en passant
// are limited to capturing or blocking the checker. MakeMove rejects the
// moves that leave the king attacked.
func (p *Position) GenerateMoves(ml []OrderedMove) []OrderedMove {
	return p.generate(ml, true)
}

// GenerateCaptures writes captures and queen promotions into ml.
func (p *Position) GenerateCaptures(ml []OrderedMove) []OrderedMove {
	return p.generate(ml, false)
}

func (p *Position) generate(ml []OrderedMove, quiets bool) []OrderedMove {
	var l = moveList{moves: ml}
	var us, them = p.Us(), p.Them()
	var occ = us | them
	var king = p.KingSquare(p.WhiteMove)

	var targets = them
	if quiets {
		targets = ^us
		if p.Checkers != 0 {
			targets = p.Checkers | between[king][Lsb(p.Checkers)]
		}
	}

	p.pawnMoves(&l, quiets, targets)

	for piece := Knight; piece < King; piece++ {
		for b := p.Pieces[piece] & us; b != 0; b &= b - 1 {
			var from = Lsb(b)
			p.addMoves(&l, piece, from, attacksFrom(piece, from, occ)&targets)
		}
	}

	var kingTargets = them
	if quiets {
		kingTargets = ^us
	}
	p.addMoves(&l, King, king, KingAttacks[king]&kingTargets)
	if quiets && p.Checkers == 0 {
		p.castlingMoves(&l)
	}
	return ml[:l.count]
}

func (p *Position) addMoves(l *moveList, piece, from int, dests uint64) {
	for ; dests != 0; dests &= dests - 1 {
		var to = Lsb(dests)
		l.add(newMove(from, to, piece, p.WhatPiece(to), MoveNormal))
	}
}

// addPawnMoves adds a move to every square of dests from delta squares back,
// expanded into one move per promotion piece when promos is not empty.
func (p *Position) addPawnMoves(l *moveList, dests uint64, delta int, kind MoveKind, promos []int) {
	for ; dests != 0; dests &= dests - 1 {
		var to = Lsb(dests)
		var m = newMove(to-delta, to, Pawn, p.WhatPiece(to), kind)
		if len(promos) == 0 {
			l.add(m)
			continue
		}
		for _, promo := range promos {
			l.add(m.promoteTo(promo))
		}
	}
}

func (p *Position) pawnMoves(l *moveList, quiets bool, targets uint64) {
	var white = p.WhiteMove
	var pawns = p.PiecesOf(Pawn, white)
	var them = p.Them()
	var empty = ^p.Occupied()

	var push, west, east = 8, 7, 9
	var single = North(pawns) & empty
	var double = North(single) & empty & RankBB(Rank4)
	var westCaptures = NorthWest(pawns) & them & targets
	var eastCaptures = NorthEast(pawns) & them & targets
	var lastRank = RankBB(Rank8)
	if !white {
		push, west, east = -8, -9, -7
		single = South(pawns) & empty
		double = South(single) & empty & RankBB(Rank5)
		westCaptures = SouthWest(pawns) & them & targets
		eastCaptures = SouthEast(pawns) & them & targets
		lastRank = RankBB(Rank1)
	}

	var promos = queenOnly
	if quiets {
		promos = allPromotions
		single &= targets
		p.addPawnMoves(l, single&^lastRank, push, MoveNormal, nil)
		p.addPawnMoves(l, double&targets, 2*push, MoveDoublePawnPush, nil)
	}
	p.addPawnMoves(l, single&lastRank, push, MoveNormal, promos)
	p.addPawnMoves(l, westCaptures&^lastRank, west, MoveNormal, nil)
	p.addPawnMoves(l, eastCaptures&^lastRank, east, MoveNormal, nil)
	p.addPawnMoves(l, westCaptures&lastRank, west, MoveNormal, promos)
	p.addPawnMoves(l, eastCaptures&lastRank, east, MoveNormal, promos)

	if p.EpSquare != SquareNone {
		for b := PawnAttacks(p.EpSquare, !white) & pawns; b != 0; b &= b - 1 {
			l.add(newMove(Lsb(b), p.EpSquare, Pawn, Pawn, MoveEnPassant))
		}
	}
}

// castlingMoves adds castling when the rights are kept, the squares between
// king and rook are empty and the king does not cross an attacked square.
// An attacked destination is left to MakeMove.
func (p *Position) castlingMoves(l *moveList) {
	var white = p.WhiteMove
	var home, kingSide, queenSide = 0, WhiteKingSide, WhiteQueenSide
	if !white {
		home, kingSide, queenSide = 56, BlackKingSide, BlackQueenSide
	}
	var occ = p.Occupied()
	var king = home + FileE
	if p.CastleRights&kingSide != 0 &&
		occ&between[king][home+FileH] == 0 &&
		!p.IsSquareAttacked(home+FileF, !white) {
		l.add(newMove(king, home+FileG, King, Empty, MoveCastleKingSide))
	}
	if p.CastleRights&queenSide != 0 &&
		occ&between[king][home+FileA] == 0 &&
		!p.IsSquareAttacked(home+FileD, !white) {
		l.add(newMove(king, home+FileC, King, Empty, MoveCastleQueenSide))
	}
}

// GenerateLegalMoves returns the legal moves in generation order.
func (p *Position) GenerateLegalMoves() []Move {
	var buffer [MaxMoves]OrderedMove
	var result []Move
	var next Position
	for _, om := range p.GenerateMoves(buffer[:]) {
		if p.MakeMove(om.Move, &next) {
			result = append(result, om.Move)
		}
	}
	return result
}

// HasLegalMove stops at the first legal move.
func (p *Position) HasLegalMove() bool {
	var buffer [MaxMoves]OrderedMove
	var next Position
	for _, om := range p.GenerateMoves(buffer[:]) {
		if p.MakeMove(om.Move, &next) {
			return true
		}
	}
	return false
}
