package arena

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"github.com/pawnstorm/pawnstorm/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// DefaultOpenings returns the built in opening book as FENs.
func DefaultOpenings() ([]string, error) {
	return ParseOpenings(openingsTxt)
}

// ParseOpenings reads one opening per line, either as a FEN or as PGN
// movetext. Empty lines and lines starting with // are skipped.
func ParseOpenings(text string) ([]string, error) {
	var result []string
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var fen, err = parseOpening(line)
		if err != nil {
			return nil, fmt.Errorf("opening line %v: %w", i+1, err)
		}
		result = append(result, fen)
	}
	return result, nil
}

func parseOpening(line string) (string, error) {
	if p, err := common.NewPositionFromFEN(line); err == nil {
		return p.String(), nil
	}
	var opt, err = chess.PGN(strings.NewReader(line))
	if err != nil {
		return "", err
	}
	var g = chess.NewGame(opt)
	var p common.Position
	p, err = common.NewPositionFromFEN(g.Position().String())
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
