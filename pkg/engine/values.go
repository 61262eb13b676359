package engine

import . "github.com/pawnstorm/pawnstorm/pkg/common"

// maxPly bounds the search path, quiescence included.
const maxPly = 100

// Search values. Mates are scored valueMate minus the distance in plies
// from the root, anything beyond valueWin is a forced mate.
const (
	valueDraw     = 0
	valueMate     = 32000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxPly
	valueLoss     = -valueWin
)

func winIn(ply int) int { return valueMate - ply }

func lossIn(ply int) int { return ply - valueMate }

func isMate(v int) bool { return v >= valueWin || v <= valueLoss }

// valueToTT makes a mate score relative to the node storing it, so the
// entry stays correct when reached at another ply.
func valueToTT(v, ply int) int {
	switch {
	case v >= valueWin:
		return v + ply
	case v <= valueLoss:
		return v - ply
	}
	return v
}

func valueFromTT(v, ply int) int {
	switch {
	case v >= valueWin:
		return v - ply
	case v <= valueLoss:
		return v + ply
	}
	return v
}

// newUciScore reports mates in moves rather than plies.
func newUciScore(v int) UciScore {
	switch {
	case v >= valueWin:
		return UciScore{Mate: (valueMate - v + 1) / 2}
	case v <= valueLoss:
		return UciScore{Mate: -(valueMate + v) / 2}
	}
	return UciScore{Centipawns: v}
}
