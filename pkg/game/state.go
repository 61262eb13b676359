package game

import (
	"fmt"

	"github.com/pawnstorm/pawnstorm/pkg/common"
)

type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var statusNames = [...]string{"ongoing", "check", "checkmate", "stalemate", "draw"}

func (s Status) String() string {
	if s >= Ongoing && s <= Draw {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMove
	Threefold
	InsufficientMaterial
)

var drawReasonNames = [...]string{"", "fifty-move rule", "threefold repetition", "insufficient material"}

func (r DrawReason) String() string {
	if r >= NoDraw && r <= InsufficientMaterial {
		return drawReasonNames[r]
	}
	return fmt.Sprintf("DrawReason(%d)", int(r))
}

type State struct {
	Status      Status
	DrawReason  DrawReason
	WhiteToMove bool
}

func (s State) IsOver() bool {
	return s.Status == Checkmate || s.Status == Stalemate || s.Status == Draw
}

// Winner is only defined for checkmate: the side that delivered it.
func (s State) Winner() (white bool, ok bool) {
	if s.Status != Checkmate {
		return false, false
	}
	return !s.WhiteToMove, true
}

// Result returns the PGN result token.
func (s State) Result() string {
	switch s.Status {
	case Checkmate:
		if s.WhiteToMove {
			return "0-1"
		}
		return "1-0"
	case Stalemate, Draw:
		return "1/2-1/2"
	}
	return "*"
}

func (s State) String() string {
	var side = sideName(s.WhiteToMove)
	switch s.Status {
	case Checkmate:
		return fmt.Sprintf("checkmate, %v wins", sideName(!s.WhiteToMove))
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw by " + s.DrawReason.String()
	case Check:
		return fmt.Sprintf("%v to move, in check", side)
	}
	return fmt.Sprintf("%v to move", side)
}

func sideName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

// deriveState classifies p. history holds the positions that preceded p.
// Checkmate and stalemate take precedence over draw claims.
func deriveState(p *common.Position, history []common.Position) State {
	var state = State{WhiteToMove: p.WhiteMove}
	if !p.HasLegalMove() {
		if p.IsCheck() {
			state.Status = Checkmate
		} else {
			state.Status = Stalemate
		}
		return state
	}
	if p.Rule50 >= 100 {
		state.Status, state.DrawReason = Draw, FiftyMove
		return state
	}
	if repetitions(p, history) >= 3 {
		state.Status, state.DrawReason = Draw, Threefold
		return state
	}
	if p.IsInsufficientMaterial() {
		state.Status, state.DrawReason = Draw, InsufficientMaterial
		return state
	}
	if p.IsCheck() {
		state.Status = Check
	}
	return state
}

// repetitions counts occurrences of p, including p itself.
func repetitions(p *common.Position, history []common.Position) int {
	var count = 1
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].IsRepetitionOf(p) {
			count++
		}
	}
	return count
}
