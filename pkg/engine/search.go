package engine

import (
	"sync/atomic"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

type frame struct {
	pos     Position
	moves   [MaxMoves]OrderedMove
	quiets  [MaxMoves]Move
	killers [2]Move
	pv      [maxPly + 1]Move
	pvLen   int
}

type rootMove struct {
	move  Move
	score int
}

// worker runs its own iterative deepening over a private stack. Workers
// share only the transposition table and the clock.
type worker struct {
	engine   *Engine
	eval     Evaluator
	nodes    atomic.Int64
	history  [2][64][64]int32
	roots    []rootMove
	margin   int
	progress func(SearchInfo)
	result   outcome
	stack    [maxPly + 1]frame
}

// reset loads the root and orders its legal moves like any other node.
// A margin > 0 makes the root search score every move within margin of
// the best exactly.
func (w *worker) reset(root *Position, margin int) {
	w.nodes.Store(0)
	w.history = [2][64][64]int32{}
	for i := range w.stack {
		w.stack[i].killers = [2]Move{}
	}
	w.margin = margin
	w.progress = nil
	w.result = outcome{}
	w.stack[0].pos = *root

	w.roots = w.roots[:0]
	var pk = w.mainPicker(0, MoveEmpty)
	var child Position
	for m, ok := pk.pick(); ok; m, ok = pk.pick() {
		if root.MakeMove(m, &child) {
			w.roots = append(w.roots, rootMove{move: m})
		}
	}
}

// iterate deepens from first. Only the main worker records results; an
// iteration cut short by the clock is dropped.
func (w *worker) iterate(first int, main bool) {
	var c = w.engine.clock
	var score int
	for depth := first; ; depth++ {
		if main && !c.deeper(depth, score) || c.stopped() || depth > maxPly {
			return
		}
		var s = w.aspiration(depth, score)
		if c.stopped() {
			return
		}
		score = s
		if !main {
			continue
		}
		w.complete(depth, score)
		if len(w.roots) == 1 && c.limits.Depth == 0 {
			return
		}
	}
}

func (w *worker) complete(depth, score int) {
	var f = &w.stack[0]
	w.result = outcome{
		depth: depth,
		score: score,
		line:  append([]Move(nil), f.pv[:f.pvLen]...),
		roots: append([]rootMove(nil), w.roots...),
	}
	var nodes = w.engine.totalNodes()
	if w.progress != nil && nodes >= int64(w.engine.ProgressMinNodes) {
		var o = w.result
		o.start = w.engine.clock.start
		o.nodes = nodes
		w.progress(o.info())
	}
}

// aspiration searches a narrow window around the previous score and widens
// the failing side.
func (w *worker) aspiration(depth, prev int) int {
	const window = 30
	if !w.engine.AspirationWindows || depth < 5 || isMate(prev) || w.margin > 0 {
		return w.searchRoot(depth, -valueInfinity, valueInfinity)
	}
	var alpha, beta = prev - window, prev + window
	for {
		var score = w.searchRoot(depth, alpha, beta)
		switch {
		case w.engine.clock.stopped():
			return score
		case score <= alpha:
			alpha = -valueInfinity
		case score >= beta:
			beta = valueInfinity
		default:
			return score
		}
	}
}

// searchRoot walks the root move list. The best move moves to the front so
// the next iteration tries it first.
func (w *worker) searchRoot(depth, alpha, beta int) int {
	var f = &w.stack[0]
	f.pvLen = 0
	var child = &w.stack[1].pos
	var best = -valueInfinity
	for i := range w.roots {
		var rm = w.roots[i]
		f.pos.MakeMove(rm.move, child)
		w.countNode()

		var lo = alpha
		if w.margin > 0 && best-w.margin > lo {
			lo = best - w.margin
		}
		var score int
		if i == 0 {
			score = -w.alphaBeta(-beta, -lo, depth-1, 1)
		} else {
			score = -w.alphaBeta(-lo-1, -lo, depth-1, 1)
			if score > lo && score < beta {
				score = -w.alphaBeta(-beta, -lo, depth-1, 1)
			}
		}
		if w.engine.clock.stopped() {
			return best
		}
		rm.score = score
		w.roots[i] = rm
		if score <= best {
			continue
		}
		best = score
		w.setPV(0, rm.move)
		copy(w.roots[1:i+1], w.roots[:i])
		w.roots[0] = rm
		if w.margin == 0 {
			alpha = max(alpha, score)
		}
		if score >= beta {
			break
		}
	}
	return best
}

func (w *worker) alphaBeta(alpha, beta, depth, ply int) int {
	if depth <= 0 {
		return w.quiescence(alpha, beta, ply)
	}
	var f = &w.stack[ply]
	f.pvLen = 0
	var p = &f.pos
	if w.engine.clock.stopped() {
		return 0
	}
	if ply >= maxPly {
		return w.evaluate(p)
	}
	if w.drawn(ply) {
		return valueDraw
	}
	// no mate found below this node can beat one already proven
	alpha = max(alpha, lossIn(ply))
	beta = min(beta, winIn(ply+1))
	if alpha >= beta {
		return alpha
	}

	var pvNode = beta > alpha+1
	var ttDepth, ttScore, ttBound, ttMove, ttHit = w.engine.table.Read(p.Key)
	if ttHit && !pvNode && ttDepth >= depth {
		ttScore = valueFromTT(ttScore, ply)
		if ttBound&boundLower != 0 && ttScore >= beta ||
			ttBound&boundUpper != 0 && ttScore <= alpha {
			return ttScore
		}
	}

	var opts = &w.engine.Options
	var inCheck = p.IsCheck()
	var staticEval = w.evaluate(p)

	if opts.NullMovePruning && !pvNode && !inCheck && depth >= 3 &&
		staticEval >= beta && !isMate(beta) &&
		p.LastMove != MoveEmpty && hasPieces(p) {
		var reduction = 3 + depth/6
		p.MakeNullMove(&w.stack[ply+1].pos)
		w.countNode()
		var score = -w.alphaBeta(-beta, 1-beta, depth-1-reduction, ply+1)
		if w.engine.clock.stopped() {
			return 0
		}
		if score >= beta {
			if isMate(score) {
				score = beta
			}
			return score
		}
	}

	var pk = w.mainPicker(ply, ttMove)
	var child = &w.stack[ply+1].pos
	var best, bestMove = -valueInfinity, MoveEmpty
	var legal int
	var tried = f.quiets[:0]
	var oldAlpha = alpha
	for m, ok := pk.pick(); ok; m, ok = pk.pick() {
		if !p.MakeMove(m, child) {
			continue
		}
		w.countNode()
		legal++

		var newDepth = depth - 1
		if opts.CheckExtension && depth >= 3 && child.IsCheck() {
			newDepth++
		}
		var reduction int
		if opts.LateMoveReduction && depth >= 3 && legal > 3 &&
			!m.IsNoisy() && !inCheck && !child.IsCheck() {
			reduction = 1 + legal/12 + depth/8
			if pvNode {
				reduction--
			}
			reduction = min(reduction, newDepth-1)
		}

		var score int
		if legal == 1 {
			score = -w.alphaBeta(-beta, -alpha, newDepth, ply+1)
		} else {
			score = -w.alphaBeta(-alpha-1, -alpha, newDepth-reduction, ply+1)
			if score > alpha && reduction > 0 {
				score = -w.alphaBeta(-alpha-1, -alpha, newDepth, ply+1)
			}
			if score > alpha && score < beta {
				score = -w.alphaBeta(-beta, -alpha, newDepth, ply+1)
			}
		}
		if w.engine.clock.stopped() {
			return 0
		}
		if !m.IsNoisy() {
			tried = append(tried, m)
		}
		if score > best {
			best, bestMove = score, m
			if score > alpha {
				alpha = score
				w.setPV(ply, m)
				if alpha >= beta {
					break
				}
			}
		}
	}

	if legal == 0 {
		if inCheck {
			return lossIn(ply)
		}
		return valueDraw
	}

	var bound = boundExact
	switch {
	case best >= beta:
		bound = boundLower
		if !bestMove.IsNoisy() {
			w.rewardQuiet(ply, depth, bestMove, tried)
		}
	case best <= oldAlpha:
		bound = boundUpper
		bestMove = MoveEmpty
	}
	w.engine.table.Update(p.Key, depth, valueToTT(best, ply), bound, bestMove)
	return best
}

// quiescence settles captures before trusting the static evaluation.
// In check every evasion is tried.
func (w *worker) quiescence(alpha, beta, ply int) int {
	var f = &w.stack[ply]
	f.pvLen = 0
	var p = &f.pos
	if w.engine.clock.stopped() {
		return 0
	}
	if ply >= maxPly {
		return w.evaluate(p)
	}
	if w.drawn(ply) {
		return valueDraw
	}

	var inCheck = p.IsCheck()
	var best = -valueInfinity
	if !inCheck {
		best = w.evaluate(p)
		if best >= beta {
			return best
		}
		alpha = max(alpha, best)
	}

	var pk = w.noisyPicker(ply)
	var child = &w.stack[ply+1].pos
	var legal bool
	for m, ok := pk.pick(); ok; m, ok = pk.pick() {
		if !p.MakeMove(m, child) {
			continue
		}
		w.countNode()
		legal = true
		var score = -w.quiescence(-beta, -alpha, ply+1)
		if score > best {
			best = score
			if score > alpha {
				alpha = score
				w.setPV(ply, m)
				if alpha >= beta {
					break
				}
			}
		}
	}
	if inCheck && !legal {
		return lossIn(ply)
	}
	return best
}

func (w *worker) setPV(ply int, m Move) {
	var f, child = &w.stack[ply], &w.stack[ply+1]
	f.pv[0] = m
	f.pvLen = 1 + copy(f.pv[1:], child.pv[:child.pvLen])
}

func (w *worker) countNode() {
	if w.nodes.Add(1)&pollMask == 0 {
		w.engine.clock.poll(w.engine.totalNodes())
	}
}

// evaluate scores for the side to move, kept clear of mate values.
func (w *worker) evaluate(p *Position) int {
	var score = w.eval.Evaluate(p)
	if !p.WhiteMove {
		score = -score
	}
	return max(valueLoss+1, min(valueWin-1, score))
}

// drawn detects the fifty-move rule, dead material and repetitions of the
// search path or of the game before the root. A null move or an
// irreversible move ends the scan.
func (w *worker) drawn(ply int) bool {
	var p = &w.stack[ply].pos
	if p.Rule50 >= 100 || p.IsInsufficientMaterial() {
		return true
	}
	for i := ply - 1; i >= 0; i-- {
		var after = &w.stack[i+1].pos
		if after.Rule50 == 0 || after.LastMove == MoveEmpty {
			return false
		}
		if w.stack[i].pos.Key == p.Key {
			return true
		}
	}
	return w.engine.seen[p.Key]
}

// hasPieces guards null move pruning against pawn endings, where passing
// would hide zugzwang.
func hasPieces(p *Position) bool {
	return p.Us()&^(p.Pieces[Pawn]|p.Pieces[King]) != 0
}
