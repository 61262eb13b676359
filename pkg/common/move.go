package common

import (
	"fmt"
	"strings"
)

// Move packs one ply into 24 bits:
//
//	0-5 from, 6-11 to, 12-14 moving piece, 15-17 captured piece,
//	18-20 promotion piece, 21-23 kind
//
// Moves are only built by the move generator.
type Move int32

const MoveEmpty = Move(0)

type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveCapture
	MoveCastleKingSide
	MoveCastleQueenSide
	MoveEnPassant
	MoveDoublePawnPush
)

func (k MoveKind) String() string {
	switch k {
	case MoveNormal:
		return "normal"
	case MoveCapture:
		return "capture"
	case MoveCastleKingSide:
		return "castle-kingside"
	case MoveCastleQueenSide:
		return "castle-queenside"
	case MoveEnPassant:
		return "en-passant"
	case MoveDoublePawnPush:
		return "double-pawn-push"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

const (
	shiftTo       = 6
	shiftPiece    = 12
	shiftCaptured = 15
	shiftPromo    = 18
	shiftKind     = 21
)

// newMove tags plain moves that take something as captures.
func newMove(from, to, piece, captured int, kind MoveKind) Move {
	if kind == MoveNormal && captured != Empty {
		kind = MoveCapture
	}
	return Move(from | to<<shiftTo | piece<<shiftPiece |
		captured<<shiftCaptured | int(kind)<<shiftKind)
}

func (m Move) promoteTo(piece int) Move {
	return m | Move(piece<<shiftPromo)
}

func (m Move) field(shift, mask int) int { return int(m) >> shift & mask }

func (m Move) From() int          { return m.field(0, 63) }
func (m Move) To() int            { return m.field(shiftTo, 63) }
func (m Move) MovingPiece() int   { return m.field(shiftPiece, 7) }
func (m Move) CapturedPiece() int { return m.field(shiftCaptured, 7) }
func (m Move) Promotion() int     { return m.field(shiftPromo, 7) }
func (m Move) Kind() MoveKind     { return MoveKind(m.field(shiftKind, 7)) }

func (m Move) IsCastling() bool {
	return m.Kind() == MoveCastleKingSide || m.Kind() == MoveCastleQueenSide
}

// IsNoisy is true for captures and promotions.
func (m Move) IsNoisy() bool {
	return m.CapturedPiece() != Empty || m.Promotion() != Empty
}

const pieceLetters = " pnbrqk"

// String returns long algebraic notation, e.g. e2e4 or a7a8q.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = SquareName(m.From()) + SquareName(m.To())
	if promo := m.Promotion(); promo != Empty {
		s += pieceLetters[promo : promo+1]
	}
	return s
}

// ParseMove finds the legal move written in long algebraic notation.
func (p *Position) ParseMove(lan string) (Move, error) {
	for _, mv := range p.GenerateLegalMoves() {
		if strings.EqualFold(mv.String(), lan) {
			return mv, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w: %v in %v", ErrInvalidMove, lan, p.String())
}

// MakeMoveLAN applies a move given in long algebraic notation.
func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var mv, err = p.ParseMove(lan)
	if err != nil {
		return Position{}, false
	}
	var next Position
	p.MakeMove(mv, &next)
	return next, true
}

// MoveToSAN formats a legal move in standard algebraic notation,
// including the check or mate suffix.
func (p *Position) MoveToSAN(mv Move) string {
	var san = sanBody(mv, p.GenerateLegalMoves())
	var next Position
	if p.MakeMove(mv, &next) && next.IsCheck() {
		if next.HasLegalMove() {
			san += "+"
		} else {
			san += "#"
		}
	}
	return san
}

func sanBody(mv Move, legal []Move) string {
	switch mv.Kind() {
	case MoveCastleKingSide:
		return "O-O"
	case MoveCastleQueenSide:
		return "O-O-O"
	}
	var from, to, piece = mv.From(), mv.To(), mv.MovingPiece()
	var sb strings.Builder
	if piece == Pawn {
		if mv.CapturedPiece() != Empty {
			sb.WriteByte(SquareName(from)[0])
		}
	} else {
		sb.WriteString(strings.ToUpper(pieceLetters[piece : piece+1]))
		var rivals, sameFile, sameRank bool
		for _, other := range legal {
			if other.To() != to || other.MovingPiece() != piece || other.From() == from {
				continue
			}
			rivals = true
			sameFile = sameFile || File(other.From()) == File(from)
			sameRank = sameRank || Rank(other.From()) == Rank(from)
		}
		switch {
		case !rivals:
		case !sameFile:
			sb.WriteByte(SquareName(from)[0])
		case !sameRank:
			sb.WriteByte(SquareName(from)[1])
		default:
			sb.WriteString(SquareName(from))
		}
	}
	if mv.CapturedPiece() != Empty {
		sb.WriteByte('x')
	}
	sb.WriteString(SquareName(to))
	if promo := mv.Promotion(); promo != Empty {
		sb.WriteByte('=')
		sb.WriteString(strings.ToUpper(pieceLetters[promo : promo+1]))
	}
	return sb.String()
}

// ParseMoveSAN finds the legal move written in standard algebraic notation.
// Check marks and annotations are ignored and a promotion may omit the '='.
func (p *Position) ParseMoveSAN(san string) (Move, error) {
	var want = strings.ReplaceAll(strings.TrimRight(san, "+#!?"), "0", "O")
	var legal = p.GenerateLegalMoves()
	for _, mv := range legal {
		var body = sanBody(mv, legal)
		if body == want || strings.Replace(body, "=", "", 1) == want {
			return mv, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w: %v in %v", ErrInvalidMove, san, p.String())
}
