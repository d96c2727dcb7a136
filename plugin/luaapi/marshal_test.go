package luaapi

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestNumberSequenceFollowsNumericKeyOrder(t *testing.T) {
	f := newFixture(t, 1)
	// Assignment order differs from key order on purpose.
	f.run(t, `
		t = {}
		t[3] = 30
		t[1] = 10
		t[2] = 20
	`)

	got, err := numberSequence(f.L.GetGlobal("t").(*lua.LTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
}

func TestNumberSequenceRejectsNonNumbers(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `t = {1, "x", 3}`)

	_, err := numberSequence(f.L.GetGlobal("t").(*lua.LTable))
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if got, want := err.Error(), "entry 2 is not a number"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected a validation error, got %T", err)
	}
}

func TestStringSequence(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `t = {"*.pdf", "*.xopp"}`)

	got, err := stringSequence(f.L.GetGlobal("t").(*lua.LTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "*.pdf" || got[1] != "*.xopp" {
		t.Errorf("expected [*.pdf *.xopp], got %v", got)
	}

	f.run(t, `u = {"ok", 7}`)
	if _, err := stringSequence(f.L.GetGlobal("u").(*lua.LTable)); err == nil {
		t.Errorf("expected error for non-string entry, got none")
	}
}

func TestButtonMapSkipsForeignEntries(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `t = {[1] = "Yes", [2] = "No", note = "ignored", [3] = 42}`)

	got := buttonMap(f.L.GetGlobal("t").(*lua.LTable))
	if len(got) != 2 {
		t.Fatalf("expected 2 buttons, got %d: %v", len(got), got)
	}
	if got[1] != "Yes" || got[2] != "No" {
		t.Errorf("expected {1:Yes 2:No}, got %v", got)
	}
}
