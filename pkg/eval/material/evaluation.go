package eval

import (
	"github.com/pawnstorm/pawnstorm/pkg/common"
)

var values = [common.King + 1]int{common.Pawn: 100, common.Knight: 320,
	common.Bishop: 330, common.Rook: 500, common.Queen: 900}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate counts material only. Positive values favour white.
func (e *EvaluationService) Evaluate(p *common.Position) int {
	var score int
	for piece, value := range values {
		score += value * (common.PopCount(p.PiecesOf(piece, true)) -
			common.PopCount(p.PiecesOf(piece, false)))
	}
	return score
}
