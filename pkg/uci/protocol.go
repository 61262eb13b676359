package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/pawnstorm/pawnstorm/pkg/common"
	"github.com/pawnstorm/pawnstorm/pkg/engine"
)

// LevelOff disables difficulty levels, go then searches with the given limits.
const LevelOff = "off"

type Engine interface {
	Prepare()
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
	Choose(ctx context.Context, positions []common.Position, d engine.Difficulty) (common.SearchInfo, error)
}

var errBusy = errors.New("search in progress")

// Protocol speaks UCI over a line based stream. Searches run on their own
// goroutine; Run prints their progress and the best move in order.
type Protocol struct {
	name, author, version string

	options   []Option
	engine    Engine
	level     string
	out       io.Writer
	positions []common.Position
	running   *search
}

type search struct {
	cancel   context.CancelFunc
	progress chan common.SearchInfo
	done     chan searchDone
}

type searchDone struct {
	info common.SearchInfo
	err  error
}

func New(name, author, version string, engine Engine, options []Option, out io.Writer) *Protocol {
	var uci = &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		level:     LevelOff,
		out:       out,
		positions: []common.Position{common.NewPosition()},
	}
	uci.options = append(options, &ComboOption{
		Name:   "Level",
		Values: []string{LevelOff, "easy", "medium", "hard", "expert"},
		Value:  &uci.level,
	})
	return uci
}

var commands = map[string]func(uci *Protocol, args []string) error{
	"uci":        (*Protocol).identify,
	"isready":    (*Protocol).isReady,
	"setoption":  (*Protocol).setOption,
	"ucinewgame": (*Protocol).newGame,
	"position":   (*Protocol).setPosition,
	"go":         (*Protocol).startSearch,
	"stop":       func(*Protocol, []string) error { return nil },
}

// Run serves commands from in. On quit a running search is stopped, at the
// end of input it is allowed to finish.
func (uci *Protocol) Run(logger *log.Logger, in io.Reader) {
	var lines = make(chan string)
	go scanLines(in, lines)
	for {
		var progress <-chan common.SearchInfo
		var done <-chan searchDone
		if uci.running != nil {
			progress, done = uci.running.progress, uci.running.done
		}
		select {
		case si := <-progress:
			fmt.Fprintln(uci.out, formatInfo(si))
		case r := <-done:
			uci.finish(r)
		case line, ok := <-lines:
			if ok && line != "quit" {
				if err := uci.handle(line); err != nil {
					logger.Println(err)
				}
				continue
			}
			if ok && uci.running != nil {
				uci.running.cancel()
			}
			uci.wait()
			return
		}
	}
}

// scanLines stops after quit so that nothing behind it is read.
func scanLines(in io.Reader, lines chan<- string) {
	defer close(lines)
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines <- line
		if line == "quit" {
			return
		}
	}
}

func (uci *Protocol) handle(line string) error {
	var args = strings.Fields(line)
	if uci.running != nil {
		switch args[0] {
		case "stop":
			uci.running.cancel()
			return nil
		case "isready":
			fmt.Fprintln(uci.out, "readyok")
			return nil
		}
		return fmt.Errorf("%v: %w", args[0], errBusy)
	}
	var command, ok = commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}
	return command(uci, args[1:])
}

func (uci *Protocol) identify([]string) error {
	fmt.Fprintf(uci.out, "id name %s %s\nid author %s\n", uci.name, uci.version, uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) isReady([]string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

// setOption handles "setoption name <id> value <x>", where both parts may
// contain spaces.
func (uci *Protocol) setOption(args []string) error {
	var line = strings.Join(args, " ")
	var name, value, found = strings.Cut(strings.TrimPrefix(line, "name "), " value ")
	if !found || !strings.HasPrefix(line, "name ") {
		return fmt.Errorf("setoption: cannot parse %q", line)
	}
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("setoption: no option %q", name)
}

func (uci *Protocol) newGame([]string) error {
	uci.positions = []common.Position{common.NewPosition()}
	return nil
}

// setPosition handles "position startpos|fen <fen> [moves <lan>...]".
func (uci *Protocol) setPosition(args []string) error {
	var moves []string
	if i := slices.Index(args, "moves"); i >= 0 {
		args, moves = args[:i], args[i+1:]
	}
	var fen string
	switch {
	case len(args) == 1 && args[0] == "startpos":
		fen = common.InitialPositionFen
	case len(args) > 1 && args[0] == "fen":
		fen = strings.Join(args[1:], " ")
	default:
		return fmt.Errorf("position: cannot parse %q", strings.Join(args, " "))
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	var positions = []common.Position{p}
	for _, lan := range moves {
		var next, ok = positions[len(positions)-1].MakeMoveLAN(lan)
		if !ok {
			return fmt.Errorf("position: illegal move %v", lan)
		}
		positions = append(positions, next)
	}
	uci.positions = positions
	return nil
}

// startSearch plays at the configured level, or with the limits of the go
// command when the level is off.
func (uci *Protocol) startSearch(args []string) error {
	var positions = uci.positions
	var limits = parseLimits(args, positions[len(positions)-1].WhiteMove)
	var level, levelErr = engine.ParseDifficulty(uci.level)
	var ctx, cancel = context.WithCancel(context.Background())
	var s = &search{
		cancel:   cancel,
		progress: make(chan common.SearchInfo, 8),
		done:     make(chan searchDone, 1),
	}
	uci.running = s
	go func() {
		defer cancel()
		var r searchDone
		if levelErr == nil {
			r.info, r.err = uci.engine.Choose(ctx, positions, level)
		} else {
			r.info, r.err = uci.engine.Search(ctx, common.SearchParams{
				Positions: positions,
				Limits:    limits,
				Progress: func(si common.SearchInfo) {
					select {
					case s.progress <- si:
					default:
					}
				},
			})
		}
		s.done <- r
	}()
	return nil
}

// finish prints what is left of the progress and the final move.
func (uci *Protocol) finish(r searchDone) {
	for len(uci.running.progress) > 0 {
		fmt.Fprintln(uci.out, formatInfo(<-uci.running.progress))
	}
	var best = common.MoveEmpty
	if r.err == nil {
		fmt.Fprintln(uci.out, formatInfo(r.info))
		best = r.info.BestMove()
	}
	fmt.Fprintf(uci.out, "bestmove %v\n", best)
	uci.running = nil
}

func (uci *Protocol) wait() {
	if uci.running != nil {
		uci.finish(<-uci.running.done)
	}
}

func formatInfo(si common.SearchInfo) string {
	var ms = si.Time.Milliseconds()
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d score %v nodes %d time %d nps %d",
		si.Depth, si.Score, si.Nodes, ms, si.Nodes*1000/(ms+1))
	if len(si.MainLine) > 0 {
		sb.WriteString(" pv")
		for _, mv := range si.MainLine {
			sb.WriteString(" " + mv.String())
		}
	}
	return sb.String()
}

// parseLimits turns the go arguments into limits. A game clock becomes a
// fixed move time: an even share of the remaining time over movestogo
// (at most 30) plus most of the increment, never more than half the clock.
func parseLimits(args []string, whiteMove bool) common.LimitsType {
	var limits common.LimitsType
	var values = make(map[string]int)
	for i := 0; i < len(args); i++ {
		switch name := args[i]; name {
		case "infinite":
			limits.Infinite = true
		case "wtime", "btime", "winc", "binc", "movestogo", "depth", "nodes", "movetime":
			if i+1 < len(args) {
				values[name], _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}
	limits.Depth, limits.Nodes, limits.MoveTime = values["depth"], values["nodes"], values["movetime"]

	var remaining, inc = values["btime"], values["binc"]
	if whiteMove {
		remaining, inc = values["wtime"], values["winc"]
	}
	if limits.MoveTime == 0 && remaining > 0 {
		var movesToGo = values["movestogo"]
		if movesToGo <= 0 || movesToGo > 30 {
			movesToGo = 30
		}
		limits.MoveTime = max(1, min(remaining/movesToGo+inc*3/4, remaining/2))
	}
	return limits
}
