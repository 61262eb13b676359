package tactic

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pawnstorm/pawnstorm/pkg/common"
)

type EpdItem struct {
	Content   string
	ID        string
	Position  common.Position
	BestMoves []common.Move
}

// LoadEpd reads one record per line. Records that do not parse are logged
// and skipped, blank lines and # comments are ignored.
func LoadEpd(r io.Reader, logger *log.Logger) ([]EpdItem, error) {
	var items []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var item, err = ParseEpd(line)
		if err != nil {
			if logger != nil {
				logger.Println(err)
			}
			continue
		}
		items = append(items, item)
	}
	return items, scanner.Err()
}

// ParseEpd reads the board fields of a record, optionally followed by the
// two move counters, and then its "opcode operands;" operations. Only bm
// and id are kept; bm moves are in SAN.
func ParseEpd(line string) (EpdItem, error) {
	var fields = strings.Fields(line)
	if len(fields) < 5 {
		return EpdItem{}, fmt.Errorf("epd %q: too few fields", line)
	}
	var fen = strings.Join(fields[:4], " ")
	var rest = fields[4:]
	if len(rest) > 2 && isCounter(rest[0]) && isCounter(rest[1]) {
		fen += " " + rest[0] + " " + rest[1]
		rest = rest[2:]
	} else {
		fen += " 0 1"
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return EpdItem{}, fmt.Errorf("epd %q: %w", line, err)
	}

	var item = EpdItem{Content: line, Position: p}
	for _, operation := range strings.Split(strings.Join(rest, " "), ";") {
		var opcode, operands, _ = strings.Cut(strings.TrimSpace(operation), " ")
		switch opcode {
		case "id":
			item.ID = strings.Trim(operands, `"`)
		case "bm":
			for _, san := range strings.Fields(operands) {
				var mv, err = p.ParseMoveSAN(san)
				if err != nil {
					return EpdItem{}, fmt.Errorf("epd %q: %w", line, err)
				}
				item.BestMoves = append(item.BestMoves, mv)
			}
		}
	}
	if len(item.BestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("epd %q: no best move", line)
	}
	return item, nil
}

func isCounter(s string) bool {
	var _, err = strconv.Atoi(s)
	return err == nil
}
