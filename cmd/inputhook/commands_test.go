package main

import (
	"errors"
	"testing"

	"github.com/frudas24/inputhook/internal/tap"
	"github.com/frudas24/inputhook/internal/testutil"
)

// TestCommandHandler_Routes verifies inbound commands reach the matching
// injector operations.
func TestCommandHandler_Routes(t *testing.T) {
	inj := &testutil.FakeInjector{}
	handle := commandHandler(inj)

	cmds := []tap.Command{
		{T: "type", Text: "hi"},
		{T: "move", X: 3, Y: 4},
		{T: "wheel", Delta: -120},
		{T: "click", X: 7, Y: 8},
		{T: "unknown"},
	}
	for _, cmd := range cmds {
		if err := handle(cmd); err != nil {
			t.Fatalf("command %q failed: %v", cmd.T, err)
		}
	}

	want := []testutil.Call{
		{Name: "TypeUnicode", Text: "hi"},
		{Name: "MoveAbs", X: 3, Y: 4},
		{Name: "Wheel", Delta: -120},
		{Name: "MoveAbs", X: 7, Y: 8},
		{Name: "Click"},
	}
	if len(inj.Calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %+v", len(want), len(inj.Calls), inj.Calls)
	}
	for i, call := range want {
		if inj.Calls[i] != call {
			t.Fatalf("call %d: expected %+v, got %+v", i, call, inj.Calls[i])
		}
	}
}

// TestCommandHandler_InjectorFailure verifies injector errors surface to the
// connection loop.
func TestCommandHandler_InjectorFailure(t *testing.T) {
	inj := &testutil.FakeInjector{Err: errors.New("send rejected")}
	handle := commandHandler(inj)

	if err := handle(tap.Command{T: "move", X: 1, Y: 2}); err == nil {
		t.Fatalf("expected injector error")
	}
}

// TestTapChar_RejectsMultiRune verifies the tap command needs exactly one
// character.
func TestTapChar_RejectsMultiRune(t *testing.T) {
	inj := &testutil.FakeInjector{}
	if err := tapChar(inj, "ab"); err == nil {
		t.Fatalf("expected error for multi-rune input")
	}
	if err := tapChar(inj, ""); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if len(inj.Calls) != 0 {
		t.Fatalf("no injection expected, got %+v", inj.Calls)
	}
}
