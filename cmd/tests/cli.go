package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// suite holds the flags shared by the test subcommands.
type suite struct {
	path     string
	eval     string
	moveTime time.Duration
	depth    int
}

type command struct {
	usage string
	run   func(s suite) error
}

var commands = map[string]command{
	"benchmark": {"search every position to -depth and report speed", runBenchmark},
	"tactic":    {"solve every position within -movetime", runSolveTactic},
}

// dispatch parses "name [flags]" and runs the named command.
func dispatch(args []string, output io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("no command, available: %v", commandNames())
	}
	var name = args[0]
	var cmd, found = commands[name]
	if !found {
		return fmt.Errorf("command not found %q, available: %v", name, commandNames())
	}
	var s, err = parseSuite(name, args[1:], output)
	if err != nil {
		return err
	}
	return cmd.run(s)
}

func parseSuite(name string, args []string, output io.Writer) (suite, error) {
	var s suite
	var fs = flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "%v: %v\n", name, commands[name].usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&s.path, "testpath", mapPath("~/chess/tests/tests.epd"), "epd file with best move tests")
	fs.StringVar(&s.eval, "eval", "classic", "evaluation function")
	fs.DurationVar(&s.moveTime, "movetime", 3*time.Second, "time per position")
	fs.IntVar(&s.depth, "depth", 8, "search depth per position")
	if err := fs.Parse(args); err != nil {
		return suite{}, err
	}
	if fs.NArg() != 0 {
		return suite{}, fmt.Errorf("%v: unexpected arguments %v", name, fs.Args())
	}
	return s, nil
}

func commandNames() string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
