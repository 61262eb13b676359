package console

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/pawnstorm/pawnstorm/pkg/engine"
	classic "github.com/pawnstorm/pawnstorm/pkg/eval/classic"
	"github.com/pawnstorm/pawnstorm/pkg/game"
)

func newTestConsole(out io.Writer) *Console {
	var logger = log.New(io.Discard, "", 0)
	var options = engine.NewOptions()
	options.Hash = 4
	var eng = engine.NewEngine(func() engine.Evaluator { return classic.NewEvaluationService() }, options)
	return New(out, logger, game.NewManager(logger), eng, classic.NewEvaluationService(), engine.Easy)
}

func TestRunScript(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	var script = strings.Join([]string{
		"e2e4",
		"move e7e5",
		"fen",
		"undo",
		"state",
		"perft 2",
		"quit",
		"print",
	}, "\n")
	if err := c.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	var text = out.String()
	for _, want := range []string{
		"1. e4",
		"1... e5",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"black to move",
		"perft 2 nodes 600",
	} {
		if !strings.Contains(text, want) {
			t.Error(want, text)
		}
	}
	if strings.Contains(text, "a b c d e f g h") {
		t.Error("commands after quit must not run")
	}
}

func TestCommandErrors(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	var ctx = context.Background()
	if err := c.Handle(ctx, "e2e5"); !errors.Is(err, game.ErrIllegalMove) {
		t.Error(err)
	}
	if err := c.Handle(ctx, "undo"); !errors.Is(err, game.ErrNoHistory) {
		t.Error(err)
	}
	if err := c.Handle(ctx, "dance"); !errors.Is(err, errCommandNotFound) {
		t.Error(err)
	}
	if err := c.Handle(ctx, "level impossible"); err == nil {
		t.Error("expected error")
	}
	if err := c.Handle(ctx, "switch nope"); !errors.Is(err, game.ErrGameNotFound) {
		t.Error(err)
	}
}

func TestGoPlaysMate(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	var ctx = context.Background()
	for _, cmd := range []string{"new k7/8/1K6/8/8/8/8/7R w - - 0 1", "go hard", "pgn"} {
		if err := c.Handle(ctx, cmd); err != nil {
			t.Fatal(cmd, err)
		}
	}
	var text = out.String()
	for _, want := range []string{"bestmove h1h8", "1. Rh8#", "checkmate, white wins", `[Result "1-0"]`} {
		if !strings.Contains(text, want) {
			t.Error(want, text)
		}
	}
}

func TestGamesAndSwitch(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	var ctx = context.Background()
	if err := c.Handle(ctx, "new"); err != nil {
		t.Fatal(err)
	}
	var first = c.game
	if err := c.Handle(ctx, "new 4k3/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	if c.game == first {
		t.Fatal("new game expected")
	}
	if err := c.Handle(ctx, "switch "+first.ID[:8]); err != nil {
		t.Fatal(err)
	}
	if c.game != first {
		t.Error("switch failed")
	}
	out.Reset()
	if err := c.Handle(ctx, "games"); err != nil {
		t.Fatal(err)
	}
	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "* "+first.ID) {
		t.Error(lines)
	}
	if !strings.Contains(lines[1], "draw by insufficient material") {
		t.Error(lines[1])
	}
}

func TestPrintPosition(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	if err := c.Handle(context.Background(), "print"); err != nil {
		t.Fatal(err)
	}
	var lines = strings.Split(out.String(), "\n")[1:]
	if lines[0] != "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜" || lines[7] != "1 ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖" {
		t.Error(out.String())
	}
}

func TestHelpListsCommands(t *testing.T) {
	var out strings.Builder
	var c = newTestConsole(&out)
	if err := c.Handle(context.Background(), "help"); err != nil {
		t.Fatal(err)
	}
	for name := range commands {
		if !strings.Contains(out.String(), name) {
			t.Error(name)
		}
	}
	if !strings.Contains(out.String(), "quit") {
		t.Error(out.String())
	}
}
