package game

import (
	"github.com/pawnstorm/pawnstorm/pkg/common"
)

// Entry is one applied move. Before and After are full copies, so undo
// restores Before exactly.
type Entry struct {
	Before common.Position
	Move   common.Move
	After  common.Position
	SAN    string
}

type Record []Entry

// Positions returns the start position followed by every After.
func (r Record) Positions(start common.Position) []common.Position {
	var result = make([]common.Position, 0, len(r)+1)
	result = append(result, start)
	for i := range r {
		result = append(result, r[i].After)
	}
	return result
}

func (r Record) befores() []common.Position {
	var result = make([]common.Position, len(r))
	for i := range r {
		result[i] = r[i].Before
	}
	return result
}

func (r Record) Moves() []common.Move {
	var result = make([]common.Move, len(r))
	for i := range r {
		result[i] = r[i].Move
	}
	return result
}
