package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
	"github.com/pawnstorm/pawnstorm/pkg/game"
)

var errCommandNotFound = errors.New("command not found")

// Console is a line oriented front end over one game manager.
type Console struct {
	out       io.Writer
	logger    *log.Logger
	manager   *game.Manager
	engine    *engine.Engine
	evaluator engine.Evaluator
	level     engine.Difficulty
	game      *game.Game
}

func New(out io.Writer, logger *log.Logger, manager *game.Manager,
	eng *engine.Engine, evaluator engine.Evaluator, level engine.Difficulty) *Console {
	return &Console{
		out:       out,
		logger:    logger,
		manager:   manager,
		engine:    eng,
		evaluator: evaluator,
		level:     level,
	}
}

// Run reads commands until quit or the end of input.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return nil
		}
		var err = c.Handle(ctx, line)
		if err != nil {
			c.logger.Println(err)
			fmt.Fprintln(c.out, "error:", err)
		}
	}
	return scanner.Err()
}

type command struct {
	usage string
	run   func(c *Console, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":    {"new [fen]", (*Console).newGame},
		"games":  {"games", (*Console).listGames},
		"switch": {"switch <id>", (*Console).switchGame},
		"print":  {"print", (*Console).printBoard},
		"fen":    {"fen", (*Console).printFEN},
		"moves":  {"moves", (*Console).listMoves},
		"move":   {"move <lan>, or just <lan>", (*Console).playMove},
		"go":     {"go [level]", (*Console).playAI},
		"level":  {"level [name]", (*Console).setLevel},
		"undo":   {"undo", (*Console).undo},
		"state":  {"state", (*Console).printState},
		"eval":   {"eval", (*Console).printEval},
		"perft":  {"perft <depth>", (*Console).perft},
		"pgn":    {"pgn", (*Console).printPGN},
		"help":   {"help", (*Console).help},
	}
}

// Handle runs one command line. A bare move in long algebraic notation is
// played as if given to move. The first command other than new opens a
// game from the initial position.
func (c *Console) Handle(ctx context.Context, line string) error {
	var name, args, found = splitCommand(line)
	if !found {
		return nil
	}
	var cmd, ok = commands[name]
	if !ok && looksLikeMove(name) {
		cmd, args = commands["move"], []string{name}
		ok = true
	}
	if !ok {
		return fmt.Errorf("%w: %v", errCommandNotFound, name)
	}
	if c.game == nil && name != "new" {
		if err := c.newGame(ctx, nil); err != nil {
			return err
		}
	}
	return cmd.run(c, ctx, args)
}

func splitCommand(line string) (string, []string, bool) {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

func looksLikeMove(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	var _, fromOk = common.ParseSquare(s[0:2])
	var _, toOk = common.ParseSquare(s[2:4])
	return fromOk && toOk
}

func (c *Console) newGame(_ context.Context, args []string) error {
	var g, err = c.manager.NewGame(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.game = g
	fmt.Fprintln(c.out, "game", g.ID)
	return nil
}

func (c *Console) listGames(_ context.Context, args []string) error {
	for _, g := range c.manager.List() {
		var marker = " "
		if g == c.game {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%v %v %v moves, %v\n", marker, g.ID, len(g.History()), g.State())
	}
	return nil
}

func (c *Console) switchGame(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: switch <id>")
	}
	var g, err = c.manager.Find(args[0])
	if err != nil {
		return err
	}
	c.game = g
	fmt.Fprintln(c.out, "game", g.ID)
	return nil
}

func (c *Console) printBoard(_ context.Context, args []string) error {
	var p = c.game.Position()
	PrintPosition(c.out, &p)
	fmt.Fprintln(c.out, c.game.State())
	return nil
}

func (c *Console) printFEN(_ context.Context, args []string) error {
	var p = c.game.Position()
	fmt.Fprintln(c.out, p.String())
	return nil
}

func (c *Console) listMoves(_ context.Context, args []string) error {
	var moves = c.game.LegalMoves()
	var names = make([]string, len(moves))
	for i, mv := range moves {
		names[i] = mv.String()
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, strings.Join(names, " "))
	return nil
}

func (c *Console) playMove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: move <lan>")
	}
	if _, err := c.game.MakeMoveLAN(args[0]); err != nil {
		return err
	}
	c.printLastMove()
	return nil
}

func (c *Console) playAI(ctx context.Context, args []string) error {
	var level = c.level
	if len(args) > 0 {
		var err error
		level, err = engine.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
	}
	var info, err = c.game.PlayAIMove(ctx, c.engine, level)
	if err != nil {
		return err
	}
	c.logger.Println("ai move", "level", level, "move", info.BestMove(),
		"depth", info.Depth, "score", info.Score, "nodes", info.Nodes, "time", info.Time)
	fmt.Fprintf(c.out, "bestmove %v (%v, depth %v)\n", info.BestMove(), info.Score, info.Depth)
	c.printLastMove()
	return nil
}

func (c *Console) printLastMove() {
	var history = c.game.History()
	if len(history) == 0 {
		return
	}
	var last = history[len(history)-1]
	var moveNumber = last.Before.FullMove
	if last.Before.WhiteMove {
		fmt.Fprintf(c.out, "%v. %v\n", moveNumber, last.SAN)
	} else {
		fmt.Fprintf(c.out, "%v... %v\n", moveNumber, last.SAN)
	}
	if state := c.game.State(); state.Status != game.Ongoing {
		fmt.Fprintln(c.out, state)
	}
}

func (c *Console) setLevel(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "level", c.level)
		return nil
	}
	var level, err = engine.ParseDifficulty(args[0])
	if err != nil {
		return err
	}
	c.level = level
	fmt.Fprintln(c.out, "level", c.level)
	return nil
}

func (c *Console) undo(_ context.Context, args []string) error {
	var p, err = c.game.Undo()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, p.String())
	return nil
}

func (c *Console) printState(_ context.Context, args []string) error {
	fmt.Fprintln(c.out, c.game.State())
	return nil
}

func (c *Console) printEval(_ context.Context, args []string) error {
	var p = c.game.Position()
	fmt.Fprintln(c.out, "eval", c.evaluator.Evaluate(&p))
	return nil
}

func (c *Console) perft(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: perft <depth>")
	}
	var depth, err = strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("bad depth %q", args[0])
	}
	var p = c.game.Position()
	var start = time.Now()
	var nodes = common.Perft(&p, depth)
	var elapsed = time.Since(start)
	fmt.Fprintf(c.out, "perft %v nodes %v time %v\n", depth, nodes, elapsed.Round(time.Millisecond))
	return nil
}

func (c *Console) printPGN(_ context.Context, args []string) error {
	var pgn, err = c.game.PGN()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, strings.TrimSpace(pgn))
	return nil
}

func (c *Console) help(_ context.Context, args []string) error {
	var usages = make([]string, 0, len(commands)+1)
	for _, cmd := range commands {
		usages = append(usages, cmd.usage)
	}
	usages = append(usages, "quit")
	sort.Strings(usages)
	for _, usage := range usages {
		fmt.Fprintln(c.out, " ", usage)
	}
	return nil
}
