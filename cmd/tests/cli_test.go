package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseSuite(t *testing.T) {
	var s, err = parseSuite("tactic", []string{"-eval", "material", "-movetime", "5s", "-depth", "4"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if s.eval != "material" || s.moveTime != 5*time.Second || s.depth != 4 {
		t.Error(s)
	}
	s, err = parseSuite("benchmark", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if s.eval != "classic" || s.moveTime != 3*time.Second || s.depth != 8 {
		t.Error(s)
	}
}

func TestParseSuiteErrors(t *testing.T) {
	if _, err := parseSuite("tactic", []string{"-movetime", "5"}, io.Discard); err == nil {
		t.Error("duration without unit accepted")
	}
	if _, err := parseSuite("tactic", []string{"-bad", "x"}, io.Discard); err == nil {
		t.Error("unknown flag accepted")
	}
	if _, err := parseSuite("tactic", []string{"extra"}, io.Discard); err == nil {
		t.Error("positional argument accepted")
	}
	if _, err := parseSuite("tactic", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Error(err)
	}
}

func TestDispatch(t *testing.T) {
	var err = dispatch([]string{"nope"}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "benchmark, tactic") {
		t.Error(err)
	}
	if err := dispatch(nil, io.Discard); err == nil {
		t.Error("expected error")
	}
	var missing = filepath.Join(t.TempDir(), "missing.epd")
	err = dispatch([]string{"benchmark", "-testpath", missing, "-eval", "material"}, io.Discard)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error(err)
	}
}
