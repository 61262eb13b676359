package game

import (
	"errors"
	"log"
	"strings"
	"testing"
)

func TestManager(t *testing.T) {
	var buf strings.Builder
	var m = NewManager(log.New(&buf, "", 0))

	var first, err = m.NewGame("")
	if err != nil {
		t.Fatal(err)
	}
	var second *Game
	second, err = m.NewGame("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Fatal("ids must differ")
	}
	if !strings.Contains(buf.String(), first.ID) {
		t.Error(buf.String())
	}

	var got *Game
	got, err = m.Get(second.ID)
	if err != nil || got != second {
		t.Error(got, err)
	}
	got, err = m.Find(first.ID[:8])
	if err != nil || got != first {
		t.Error(got, err)
	}
	if games := m.List(); len(games) != 2 || games[0] != first {
		t.Error(games)
	}

	if err = m.Remove(first.ID); err != nil {
		t.Fatal(err)
	}
	if _, err = m.Get(first.ID); !errors.Is(err, ErrGameNotFound) {
		t.Error(err)
	}
	if err = m.Remove(first.ID); !errors.Is(err, ErrGameNotFound) {
		t.Error(err)
	}
}

func TestManagerBadFEN(t *testing.T) {
	var m = NewManager(nil)
	if _, err := m.NewGame("8/8/8/8/8/8/8/8 w - - 0 1"); err == nil {
		t.Error("expected error")
	}
	if len(m.List()) != 0 {
		t.Error(m.List())
	}
}
