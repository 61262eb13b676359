package evalbuilder

import (
	"fmt"
	"log"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	classic "github.com/pawnstorm/pawnstorm/pkg/eval/classic"
	material "github.com/pawnstorm/pawnstorm/pkg/eval/material"
	neural "github.com/pawnstorm/pawnstorm/pkg/eval/neural"
)

type Evaluator interface {
	Evaluate(p *common.Position) int
}

var Keys = []string{"classic", "material", "neural"}

// Get resolves the evaluator once and returns a factory that builds one
// instance per search thread. A neural evaluator whose model cannot be
// loaded falls back to classic.
func Get(key, modelPath string, logger *log.Logger) (func() Evaluator, error) {
	switch key {
	case "", "classic":
		return func() Evaluator { return classic.NewEvaluationService() }, nil
	case "material":
		return func() Evaluator { return material.NewEvaluationService() }, nil
	case "neural":
		var weights, path, err = neural.LoadFile(modelPath)
		if err != nil {
			if logger != nil {
				logger.Println("neural eval unavailable, using classic", "err", err)
			}
			return func() Evaluator { return classic.NewEvaluationService() }, nil
		}
		if logger != nil {
			logger.Println("loaded model", "path", path, "layers", len(weights.Layers))
		}
		return func() Evaluator { return neural.NewEvaluationService(weights) }, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
