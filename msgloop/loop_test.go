package msgloop_test

import (
	"errors"
	"testing"
	"time"

	"github.com/frudas24/inputhook"
	"github.com/frudas24/inputhook/internal/testutil"
	"github.com/frudas24/inputhook/msgloop"
)

// TestNext_BeforeStart verifies iterating before start fails.
func TestNext_BeforeStart(t *testing.T) {
	loop := msgloop.NewWithPump(testutil.NewFakePump())

	var msg msgloop.Message
	_, err := loop.Next(&msg)
	var precond *inputhook.PreconditionError
	if !errors.As(err, &precond) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
}

// TestStart_Twice verifies a second start fails.
func TestStart_Twice(t *testing.T) {
	loop := msgloop.NewWithPump(testutil.NewFakePump())

	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	err := loop.Start()
	var precond *inputhook.PreconditionError
	if !errors.As(err, &precond) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
}

// TestPost_FIFO verifies messages posted in order by one external thread are
// drained in that order.
func TestPost_FIFO(t *testing.T) {
	loop := msgloop.NewWithPump(testutil.NewFakePump())
	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	go func() {
		loop.Post(0x0410, 1, 0)
		loop.Post(0x0410, 2, 0)
		loop.Post(0x0410, 3, 0)
		loop.Stop()
	}()

	var got []uintptr
	var msg msgloop.Message
	for {
		ok, err := loop.Next(&msg)
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, msg.WParam)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected FIFO 1,2,3, got %v", got)
	}
}

// TestStop_EndsIteration verifies the reserved stop message terminates the
// loop and clears its state so later posts are no-ops.
func TestStop_EndsIteration(t *testing.T) {
	pump := testutil.NewFakePump()
	loop := msgloop.NewWithPump(pump)
	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	loop.Stop()
	var msg msgloop.Message
	ok, err := loop.Next(&msg)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if ok {
		t.Fatalf("expected iteration to end on stop")
	}

	before := pump.Posts()
	loop.Post(0x0410, 1, 0)
	if pump.Posts() != before {
		t.Fatalf("post after loop end must be a no-op")
	}
}

// TestStop_Idempotent verifies stop called twice, or before start, never
// raises or deadlocks.
func TestStop_Idempotent(t *testing.T) {
	loop := msgloop.NewWithPump(testutil.NewFakePump())

	done := make(chan struct{})
	go func() {
		loop.Stop()
		loop.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stop before start deadlocked")
	}

	// A start after an early stop exits on the first drain.
	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	var msg msgloop.Message
	ok, err := loop.Next(&msg)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if ok {
		t.Fatalf("expected immediate end after early stop")
	}

	loop.Stop()
	loop.Stop()
}

// TestNext_WaitFailure verifies a wait failure ends iteration cleanly.
func TestNext_WaitFailure(t *testing.T) {
	pump := testutil.NewFakePump()
	loop := msgloop.NewWithPump(pump)
	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	pump.Close()
	var msg msgloop.Message
	ok, err := loop.Next(&msg)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if ok {
		t.Fatalf("expected iteration to end on wait failure")
	}
}

// TestStopMessage_NotYielded verifies the reserved stop message is consumed,
// not handed to the caller.
func TestStopMessage_NotYielded(t *testing.T) {
	loop := msgloop.NewWithPump(testutil.NewFakePump())
	if err := loop.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	loop.Post(0x0410, 7, 0)
	loop.Stop()

	var msg msgloop.Message
	ok, err := loop.Next(&msg)
	if err != nil || !ok {
		t.Fatalf("expected ordinary message first, ok=%v err=%v", ok, err)
	}
	if msg.ID != 0x0410 || msg.WParam != 7 {
		t.Fatalf("unexpected message %+v", msg)
	}

	ok, err = loop.Next(&msg)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if ok {
		t.Fatalf("stop message must terminate iteration, got %+v", msg)
	}
}
