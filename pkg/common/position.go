package common

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// castleRevoke[sq] lists the rights lost when a move starts or ends on sq.
var castleRevoke = [64]int{
	SquareA1: WhiteQueenSide,
	SquareE1: WhiteKingSide | WhiteQueenSide,
	SquareH1: WhiteKingSide,
	SquareA8: BlackQueenSide,
	SquareE8: BlackKingSide | BlackQueenSide,
	SquareH8: BlackKingSide,
}

// NewPosition returns the standard initial position.
func NewPosition() Position {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFromFEN parses a FEN string. The move counters may be omitted.
// Castling rights without their king and rook at home are dropped and an
// en passant square is kept only when the capture is legal.
func NewPositionFromFEN(fen string) (Position, error) {
	var fields = strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadFEN, fen)
	}
	var p = Position{EpSquare: SquareNone, FullMove: 1}
	if err := p.placePieces(fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.WhiteMove = true
	case "b":
	default:
		return Position{}, fmt.Errorf("%w: side to move %q", ErrBadFEN, fields[1])
	}

	var rights = 0
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var i = strings.IndexRune("KQkq", ch)
			if i < 0 {
				return Position{}, fmt.Errorf("%w: castling %q", ErrBadFEN, fields[2])
			}
			rights |= 1 << i
		}
	}

	var ep, ok = ParseSquare(fields[3])
	if !ok {
		return Position{}, fmt.Errorf("%w: en passant square %q", ErrBadFEN, fields[3])
	}

	var counters = []*int{&p.Rule50, &p.FullMove}
	for i, field := range fields[4:] {
		var n, err = strconv.Atoi(field)
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("%w: move counter %q", ErrBadFEN, field)
		}
		*counters[i] = n
	}
	p.FullMove = max(1, p.FullMove)

	if err := p.setup(rights, ep); err != nil {
		return Position{}, err
	}
	return p, nil
}

func (p *Position) placePieces(placement string) error {
	var ranks = strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: %d ranks in %q", ErrBadFEN, len(ranks), placement)
	}
	for i, row := range ranks {
		var rank, file = Rank8 - i, FileA
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece, white, ok = parsePieceLetter(ch)
			if !ok || file > FileH {
				return fmt.Errorf("%w: rank %q", ErrBadFEN, row)
			}
			p.toggle(piece, white, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q", ErrBadFEN, row)
		}
	}
	return nil
}

func parsePieceLetter(ch rune) (piece int, white bool, ok bool) {
	if i := strings.IndexRune(pieceLetters, ch); i > 0 {
		return i, false, true
	}
	if i := strings.IndexRune(strings.ToUpper(pieceLetters), ch); i > 0 {
		return i, true, true
	}
	return Empty, false, false
}

// setup validates the piece placement and fills the derived fields.
func (p *Position) setup(rights, ep int) error {
	if PopCount(p.PiecesOf(King, true)) != 1 || PopCount(p.PiecesOf(King, false)) != 1 {
		return fmt.Errorf("%w: need exactly one king per side", ErrBadFEN)
	}
	if p.Pieces[Pawn]&(RankBB(Rank1)|RankBB(Rank8)) != 0 {
		return fmt.Errorf("%w: pawn on back rank", ErrBadFEN)
	}
	if p.IsSquareAttacked(p.KingSquare(!p.WhiteMove), p.WhiteMove) {
		return fmt.Errorf("%w: side not to move is in check", ErrBadFEN)
	}
	p.CastleRights = rights & p.castlePossible()
	p.EpSquare = SquareNone
	var epRank = Rank3
	if p.WhiteMove {
		epRank = Rank6
	}
	if ep != SquareNone && Rank(ep) == epRank && p.enPassantLegal(ep) {
		p.EpSquare = ep
	}
	p.Key = p.computeKey()
	p.Checkers = p.checkers()
	return nil
}

// castlePossible keeps the rights whose king and rook stand at home.
func (p *Position) castlePossible() int {
	var result = 0
	var homes = [4][2]int{
		{SquareE1, SquareH1}, {SquareE1, SquareA1},
		{SquareE8, SquareH8}, {SquareE8, SquareA8},
	}
	for i, home := range homes {
		var white = i < 2
		if p.PiecesOf(King, white)&Bit(home[0]) != 0 && p.PiecesOf(Rook, white)&Bit(home[1]) != 0 {
			result |= 1 << i
		}
	}
	return result
}

// enPassantLegal reports whether the side to move can legally capture
// en passant on ep.
func (p *Position) enPassantLegal(ep int) bool {
	var white = p.WhiteMove
	var victim = ep + 8
	if white {
		victim = ep - 8
	}
	if p.Occupied()&Bit(ep) != 0 || p.PiecesOf(Pawn, !white)&Bit(victim) == 0 {
		return false
	}
	var king = p.KingSquare(white)
	var enemies = p.Them() &^ Bit(victim)
	for b := PawnAttacks(ep, !white) & p.PiecesOf(Pawn, white); b != 0; b &= b - 1 {
		var occ = p.Occupied() ^ Bit(Lsb(b)) ^ Bit(victim) | Bit(ep)
		if p.AttackersTo(king, occ)&enemies == 0 {
			return true
		}
	}
	return false
}

// String returns the FEN of the position.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		var gap = 0
		for file := FileA; file <= FileH; file++ {
			var piece, white = p.PieceAt(MakeSquare(file, rank))
			if piece == Empty {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteString(strconv.Itoa(gap))
				gap = 0
			}
			sb.WriteString(pieceLetter(piece, white))
		}
		if gap > 0 {
			sb.WriteString(strconv.Itoa(gap))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}

	var side = "b"
	if p.WhiteMove {
		side = "w"
	}
	var rights string
	for i, ch := range "KQkq" {
		if p.CastleRights&(1<<i) != 0 {
			rights += string(ch)
		}
	}
	if rights == "" {
		rights = "-"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, rights, SquareName(p.EpSquare), p.Rule50, p.FullMove)
	return sb.String()
}

func pieceLetter(piece int, white bool) string {
	var s = pieceLetters[piece : piece+1]
	if white {
		return strings.ToUpper(s)
	}
	return s
}

// PieceAt returns the piece type on sq and its colour, or Empty.
func (p *Position) PieceAt(sq int) (piece int, white bool) {
	var b = Bit(sq)
	if p.Occupied()&b == 0 {
		return Empty, false
	}
	return p.WhatPiece(sq), p.Sides[SideWhite]&b != 0
}

func (p *Position) WhatPiece(sq int) int {
	var b = Bit(sq)
	for piece := Pawn; piece <= King; piece++ {
		if p.Pieces[piece]&b != 0 {
			return piece
		}
	}
	return Empty
}

func (p *Position) KingSquare(white bool) int {
	return Lsb(p.PiecesOf(King, white))
}

func (p *Position) IsCheck() bool {
	return p.Checkers != 0
}

// AttackersTo returns the pieces of both colours attacking sq, with
// sliders seeing through everything missing from occ.
func (p *Position) AttackersTo(sq int, occ uint64) uint64 {
	var diagonal = p.Pieces[Bishop] | p.Pieces[Queen]
	var straight = p.Pieces[Rook] | p.Pieces[Queen]
	return PawnAttacks(sq, true)&p.PiecesOf(Pawn, false) |
		PawnAttacks(sq, false)&p.PiecesOf(Pawn, true) |
		KnightAttacks[sq]&p.Pieces[Knight] |
		KingAttacks[sq]&p.Pieces[King] |
		BishopAttacks(sq, occ)&diagonal |
		RookAttacks(sq, occ)&straight
}

// IsSquareAttacked reports whether any piece of the given colour attacks sq.
func (p *Position) IsSquareAttacked(sq int, byWhite bool) bool {
	return p.AttackersTo(sq, p.Occupied())&p.Side(byWhite) != 0
}

func (p *Position) checkers() uint64 {
	return p.AttackersTo(p.KingSquare(p.WhiteMove), p.Occupied()) & p.Them()
}

// toggle adds or removes a piece, keeping the key in step.
func (p *Position) toggle(piece int, white bool, sq int) {
	var side = sideIndex(white)
	p.Pieces[piece] ^= Bit(sq)
	p.Sides[side] ^= Bit(sq)
	p.Key ^= zobrist.pieces[side][piece][sq]
}

// MakeMove writes the position after move into next and reports whether
// the mover's king is safe there; next is garbage when it is not. The move
// must come from the generator for this position.
func (p *Position) MakeMove(move Move, next *Position) bool {
	var from, to = move.From(), move.To()
	var piece, captured = move.MovingPiece(), move.CapturedPiece()
	var white = p.WhiteMove

	*next = *p
	next.WhiteMove = !white
	next.Key ^= zobrist.black
	if p.EpSquare != SquareNone {
		next.Key ^= zobrist.ep[File(p.EpSquare)]
		next.EpSquare = SquareNone
	}
	if !white {
		next.FullMove++
	}
	next.Rule50++
	if piece == Pawn || captured != Empty {
		next.Rule50 = 0
	}

	if captured != Empty {
		var sq = to
		if move.Kind() == MoveEnPassant {
			sq = MakeSquare(File(to), Rank(from))
		}
		next.toggle(captured, !white, sq)
	}
	next.toggle(piece, white, from)
	if promo := move.Promotion(); promo != Empty {
		next.toggle(promo, white, to)
	} else {
		next.toggle(piece, white, to)
	}

	var home = from &^ 7
	switch move.Kind() {
	case MoveCastleKingSide:
		next.toggle(Rook, white, home+FileH)
		next.toggle(Rook, white, home+FileF)
	case MoveCastleQueenSide:
		next.toggle(Rook, white, home+FileA)
		next.toggle(Rook, white, home+FileD)
	}

	if rights := p.CastleRights &^ (castleRevoke[from] | castleRevoke[to]); rights != p.CastleRights {
		next.Key ^= zobrist.castle[p.CastleRights] ^ zobrist.castle[rights]
		next.CastleRights = rights
	}

	if next.IsSquareAttacked(next.KingSquare(white), !white) {
		return false
	}

	if move.Kind() == MoveDoublePawnPush {
		var ep = (from + to) / 2
		if next.enPassantLegal(ep) {
			next.EpSquare = ep
			next.Key ^= zobrist.ep[File(ep)]
		}
	}
	next.Checkers = next.checkers()
	next.LastMove = move
	return true
}

// MakeNullMove passes the turn. The side to move must not be in check.
func (p *Position) MakeNullMove(next *Position) {
	*next = *p
	next.WhiteMove = !p.WhiteMove
	next.Key ^= zobrist.black
	if p.EpSquare != SquareNone {
		next.Key ^= zobrist.ep[File(p.EpSquare)]
		next.EpSquare = SquareNone
	}
	next.Rule50++
	next.Checkers = 0
	next.LastMove = MoveEmpty
}

// Apply returns the position after a legal move. Moves the generator would
// not produce for this exact position fail with ErrInvalidMove.
func (p *Position) Apply(move Move) (Position, error) {
	var next Position
	if move == MoveEmpty || !p.IsLegalMove(move) {
		return next, fmt.Errorf("%w: %v in %v", ErrInvalidMove, move, p.String())
	}
	p.MakeMove(move, &next)
	return next, nil
}

// IsLegalMove reports whether move belongs to the legal move set.
func (p *Position) IsLegalMove(move Move) bool {
	var buffer [MaxMoves]OrderedMove
	for _, om := range p.GenerateMoves(buffer[:]) {
		if om.Move == move {
			var next Position
			return p.MakeMove(move, &next)
		}
	}
	return false
}

// MirrorPosition swaps the colours and flips the board vertically.
func MirrorPosition(p *Position) Position {
	var m = Position{
		WhiteMove: !p.WhiteMove,
		Rule50:    p.Rule50,
		FullMove:  p.FullMove,
	}
	for piece := range p.Pieces {
		m.Pieces[piece] = bits.ReverseBytes64(p.Pieces[piece])
	}
	m.Sides[SideWhite] = bits.ReverseBytes64(p.Sides[SideBlack])
	m.Sides[SideBlack] = bits.ReverseBytes64(p.Sides[SideWhite])
	var rights = p.CastleRights>>2 | p.CastleRights&3<<2
	var ep = SquareNone
	if p.EpSquare != SquareNone {
		ep = FlipSquare(p.EpSquare)
	}
	if err := m.setup(rights, ep); err != nil {
		panic(err)
	}
	return m
}
