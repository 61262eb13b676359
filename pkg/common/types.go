package common

import (
	"errors"
	"fmt"
	"time"
)

// Piece types. Empty doubles as "no piece" in moves and lookups.
const (
	Empty = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Indexes of Position.Sides.
const (
	SideWhite = 0
	SideBlack = 1
)

// Castling rights bits.
const (
	WhiteKingSide  = 1
	WhiteQueenSide = 2
	BlackKingSide  = 4
	BlackQueenSide = 8

	AllCastleRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxMoves bounds the pseudo-legal moves of any reachable position.
const MaxMoves = 256

var (
	ErrBadFEN      = errors.New("bad fen")
	ErrInvalidMove = errors.New("invalid move")
)

// Position is a value type: MakeMove fills a separate Position, so a value
// handed out is never changed afterwards. Two positions compare equal with
// == only when every field matches, including LastMove.
type Position struct {
	Pieces       [King + 1]uint64 // by piece type, Pieces[Empty] is always zero
	Sides        [2]uint64        // SideWhite, SideBlack
	Checkers     uint64           // enemy pieces giving check to the side to move
	Key          uint64
	WhiteMove    bool
	CastleRights int
	EpSquare     int // set only when an en passant capture is legal
	Rule50       int
	FullMove     int
	LastMove     Move
}

func sideIndex(white bool) int {
	if white {
		return SideWhite
	}
	return SideBlack
}

func (p *Position) Side(white bool) uint64 { return p.Sides[sideIndex(white)] }

func (p *Position) Us() uint64 { return p.Side(p.WhiteMove) }

func (p *Position) Them() uint64 { return p.Side(!p.WhiteMove) }

func (p *Position) Occupied() uint64 { return p.Sides[SideWhite] | p.Sides[SideBlack] }

// PiecesOf returns the pieces of one type and colour.
func (p *Position) PiecesOf(piece int, white bool) uint64 {
	return p.Pieces[piece] & p.Side(white)
}

type OrderedMove struct {
	Move Move
	Key  int32
}

// LimitsType bounds a search. Zero fields are unlimited; MoveTime is in
// milliseconds.
type LimitsType struct {
	Infinite bool
	MoveTime int
	Depth    int
	Nodes    int
}

type SearchParams struct {
	// Positions is the game history, the last one is searched.
	Positions []Position
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

// BestMove is the first move of the principal variation.
func (si *SearchInfo) BestMove() Move {
	if len(si.MainLine) == 0 {
		return MoveEmpty
	}
	return si.MainLine[0]
}

// UciScore holds either centipawns or a mate distance in moves,
// positive when the side to move mates.
type UciScore struct {
	Centipawns int
	Mate       int
}

func (s UciScore) String() string {
	if s.Mate != 0 {
		return fmt.Sprintf("mate %d", s.Mate)
	}
	return fmt.Sprintf("cp %d", s.Centipawns)
}
