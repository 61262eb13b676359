package engine

import (
	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

// Move keys fall in bands: the table move, captures and promotions that do
// not lose material by SEE, killers, quiet moves by history, losing captures.
const (
	keyTT      = 1 << 30
	keyGood    = 1 << 28
	keyKiller  = 1 << 26
	historyMax = 1 << 20
	keyBad     = -keyGood
)

// picker hands out moves best key first by selection, so a node that cuts
// off early never sorts the rest.
type picker struct {
	moves []OrderedMove
	next  int
}

func (pk *picker) pick() (Move, bool) {
	if pk.next == len(pk.moves) {
		return MoveEmpty, false
	}
	var best = pk.next
	for i := pk.next + 1; i < len(pk.moves); i++ {
		if pk.moves[i].Key > pk.moves[best].Key {
			best = i
		}
	}
	pk.moves[pk.next], pk.moves[best] = pk.moves[best], pk.moves[pk.next]
	pk.next++
	return pk.moves[pk.next-1].Move, true
}

// mvvLva prefers the most valuable victim, then the least valuable attacker.
// A promotion counts as winning the new piece.
func mvvLva(m Move) int32 {
	var victim = m.CapturedPiece() + m.Promotion()
	return int32(8*victim + King - m.MovingPiece())
}

func (w *worker) mainPicker(ply int, ttMove Move) picker {
	var f = &w.stack[ply]
	var p = &f.pos
	var ml = p.GenerateMoves(f.moves[:])
	var side = sideOf(p)
	for i := range ml {
		var m = ml[i].Move
		var key int32
		switch {
		case m == ttMove:
			key = keyTT
		case m.IsNoisy():
			key = keyBad + mvvLva(m)
			if SeeGE(p, m, 0) {
				key = keyGood + mvvLva(m)
			}
		case m == f.killers[0]:
			key = keyKiller + 1
		case m == f.killers[1]:
			key = keyKiller
		default:
			key = w.history[side][m.From()][m.To()]
		}
		ml[i].Key = key
	}
	return picker{moves: ml}
}

// noisyPicker serves quiescence: every evasion when in check, otherwise
// captures and queen promotions that do not lose material.
func (w *worker) noisyPicker(ply int) picker {
	var f = &w.stack[ply]
	var p = &f.pos
	if p.IsCheck() {
		return w.mainPicker(ply, MoveEmpty)
	}
	var ml = p.GenerateCaptures(f.moves[:])
	var kept = ml[:0]
	for _, om := range ml {
		if SeeGE(p, om.Move, 0) {
			kept = append(kept, OrderedMove{Move: om.Move, Key: mvvLva(om.Move)})
		}
	}
	return picker{moves: kept}
}

func sideOf(p *Position) int {
	if p.WhiteMove {
		return SideWhite
	}
	return SideBlack
}

// rewardQuiet pulls the history of the quiet move that caused a cutoff up
// and of the quiet moves tried before it down.
func (w *worker) rewardQuiet(ply, depth int, best Move, tried []Move) {
	var f = &w.stack[ply]
	if f.killers[0] != best {
		f.killers[1] = f.killers[0]
		f.killers[0] = best
	}
	var side = sideOf(&f.pos)
	var bonus = int64(min(depth*depth, 400)) * 64
	for _, m := range tried {
		var h = &w.history[side][m.From()][m.To()]
		var delta = -bonus
		if m == best {
			delta = bonus
		}
		// entries saturate at historyMax
		*h += int32(delta - int64(*h)*max(delta, -delta)/historyMax)
	}
}
