package eval

import (
	"math"

	. "github.com/pawnstorm/pawnstorm/pkg/common"
)

const outputScale = 1000

// EvaluationService owns scratch buffers and must not be shared between
// goroutines. Weights may be shared.
type EvaluationService struct {
	*Weights
	activations [][]float32
	input       []int
}

func NewEvaluationService(weights *Weights) *EvaluationService {
	var es = &EvaluationService{
		Weights: weights,
		input:   make([]int, 0, 32),
	}
	for _, layer := range weights.Layers {
		es.activations = append(es.activations, make([]float32, layer.Out))
	}
	return es
}

func inputIndex(white bool, piece, sq int) int {
	var plane = piece - Pawn
	if !white {
		plane += 6
	}
	return plane*64 + sq
}

// Evaluate runs the network and scales tanh of its output to centipawns.
// Positive values favour white.
func (e *EvaluationService) Evaluate(p *Position) int {
	e.input = e.input[:0]
	for x := p.Occupied(); x != 0; x &= x - 1 {
		var sq = Lsb(x)
		var piece, white = p.PieceAt(sq)
		e.input = append(e.input, inputIndex(white, piece, sq))
	}

	var first = &e.Layers[0]
	var out = e.activations[0]
	for o := range out {
		var sum = first.Biases[o]
		var row = first.Weights[o*first.In : (o+1)*first.In]
		for _, i := range e.input {
			sum += row[i]
		}
		out[o] = sum
	}

	for l := 1; l < len(e.Layers); l++ {
		relu(out)
		var layer = &e.Layers[l]
		var next = e.activations[l]
		for o := range next {
			var sum = layer.Biases[o]
			var row = layer.Weights[o*layer.In : (o+1)*layer.In]
			for i, v := range out {
				sum += row[i] * v
			}
			next[o] = sum
		}
		out = next
	}

	return int(math.Round(math.Tanh(float64(out[0])) * outputScale))
}

func relu(x []float32) {
	for i, v := range x {
		if v < 0 {
			x[i] = 0
		}
	}
}
