package engine

import (
	"math/bits"
	"sync/atomic"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// slot stores the key xor-ed with the data word. A torn write by another
// worker leaves a pair that fails the key check, so no lock is needed.
type slot struct {
	check atomic.Uint64
	data  atomic.Uint64
}

// data word: move in bits 0-23, score 24-39, depth 40-47, bound 48-49.
func pack(depth, score, bound int, move Move) uint64 {
	return uint64(uint32(move))&0xFFFFFF |
		uint64(uint16(int16(score)))<<24 |
		uint64(uint8(int8(depth)))<<40 |
		uint64(bound)<<48
}

func unpack(data uint64) (depth, score, bound int, move Move) {
	return int(int8(data >> 40)), int(int16(data >> 24)), int(data>>48) & boundExact,
		Move(data & 0xFFFFFF)
}

type transTable struct {
	megabytes int
	slots     []slot
	mask      uint64
}

func newTransTable(megabytes int) *transTable {
	const slotSize = 16
	var count = uint64(max(1, megabytes)) << 20 / slotSize
	count = 1 << (bits.Len64(count) - 1)
	return &transTable{
		megabytes: megabytes,
		slots:     make([]slot, count),
		mask:      count - 1,
	}
}

func (tt *transTable) Size() int { return tt.megabytes }

func (tt *transTable) Clear() {
	for i := range tt.slots {
		tt.slots[i].check.Store(0)
		tt.slots[i].data.Store(0)
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move Move, ok bool) {
	var s = &tt.slots[key&tt.mask]
	var data = s.data.Load()
	if data == 0 || s.check.Load()^data != key {
		return
	}
	depth, score, bound, move = unpack(data)
	return depth, score, bound, move, true
}

// Update keeps a deeper entry of the same position unless the new one is
// exact. Other positions are always replaced.
func (tt *transTable) Update(key uint64, depth, score, bound int, move Move) {
	var s = &tt.slots[key&tt.mask]
	var old = s.data.Load()
	if old != 0 && s.check.Load()^old == key {
		var oldDepth, _, _, oldMove = unpack(old)
		if depth < oldDepth && bound != boundExact {
			return
		}
		if move == MoveEmpty {
			move = oldMove
		}
	}
	var data = pack(depth, score, bound, move)
	s.data.Store(data)
	s.check.Store(key ^ data)
}
