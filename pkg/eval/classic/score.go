package eval

import "fmt"

// Score keeps the middlegame value in the high 32 bits and the endgame value
// in the low 32 bits, so terms of both phases add up in one operation.
type Score int64

func S(middle, end int) Score {
	return Score(int64(middle)<<32 + int64(end))
}

// Middle rounds away the borrow a negative endgame half leaves in the high word.
func (s Score) Middle() int { return int(int32((int64(s) + 1<<31) >> 32)) }

func (s Score) End() int { return int(int32(s)) }

func (s Score) String() string {
	return fmt.Sprintf("S(%d, %d)", s.Middle(), s.End())
}
