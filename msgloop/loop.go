// Package msgloop owns a per-thread Windows message queue.
//
// A Loop is bound to the thread that calls Start and drained by that thread
// alone; any thread may post into it or stop it. Cross-thread handoff goes
// exclusively through the queue.
package msgloop

import (
	"sync"

	"github.com/frudas24/inputhook"
)

// WMStop is the reserved message that terminates iteration. It lives in the
// WM_USER range and must not collide with converter-produced or notification
// message ids.
const WMStop = 0x0401

// Message is one queued (id, wParam, lParam) tuple.
type Message struct {
	ID     uint32
	WParam uintptr
	LParam uintptr
}

// Pump abstracts the native message queue so the loop can be exercised
// without a Windows session.
type Pump interface {
	// ThreadID identifies the calling thread.
	ThreadID() uint32
	// Ready creates the calling thread's queue.
	Ready() error
	// Get blocks until a message arrives. It returns >0 for a message and
	// <=0 when the queue has ended or waiting failed.
	Get(msg *Message) int32
	// Post enqueues a message for the given thread.
	Post(threadID, id uint32, wParam, lParam uintptr) error
}

// Loop iterates the messages posted to its bound thread.
type Loop struct {
	pump Pump

	mu            sync.Mutex
	threadID      uint32
	started       bool
	stopRequested bool
}

// New creates a loop on the native message queue.
func New() *Loop {
	return NewWithPump(newSystemPump())
}

// NewWithPump creates a loop on a caller-supplied pump.
func NewWithPump(pump Pump) *Loop {
	return &Loop{pump: pump}
}

// Start binds the loop to the calling thread and creates its queue. It must
// be called on the thread that will drain the loop, before Next.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return &inputhook.PreconditionError{Op: "msgloop.Start", Reason: "loop already started"}
	}
	if err := l.pump.Ready(); err != nil {
		return &inputhook.NativeResourceError{Op: "PeekMessage", Err: err}
	}
	l.threadID = l.pump.ThreadID()
	l.started = true
	if l.stopRequested {
		// A stop raced ahead of start; make the first Next exit immediately.
		_ = l.pump.Post(l.threadID, WMStop, 0, 0)
	}
	return nil
}

// Next blocks until a message arrives and stores it in msg. It returns false
// after the reserved stop message or a wait failure, clearing internal state
// so later posts become no-ops.
func (l *Loop) Next(msg *Message) (bool, error) {
	l.mu.Lock()
	started := l.started
	l.mu.Unlock()
	if !started {
		return false, &inputhook.PreconditionError{Op: "msgloop.Next", Reason: "loop not started"}
	}

	r := l.pump.Get(msg)
	if r <= 0 || msg.ID == WMStop {
		l.reset()
		return false, nil
	}
	return true, nil
}

// Post enqueues a message for the bound thread. It may be called from any
// thread and is a no-op once the bound thread has terminated.
func (l *Loop) Post(id uint32, wParam, lParam uintptr) {
	l.mu.Lock()
	threadID := l.threadID
	started := l.started
	l.mu.Unlock()
	if !started || threadID == 0 {
		return
	}
	_ = l.pump.Post(threadID, id, wParam, lParam)
}

// Stop posts the reserved stop message. It is idempotent, callable from any
// thread, and safe before Start: the registration performed by Start is
// ordered against Stop by the loop mutex, so the stop either reaches the
// bound queue or is recorded for the start that has not happened yet.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		l.stopRequested = true
		return
	}
	if l.threadID != 0 {
		_ = l.pump.Post(l.threadID, WMStop, 0, 0)
	}
}

// reset clears loop state after iteration ends.
func (l *Loop) reset() {
	l.mu.Lock()
	l.threadID = 0
	l.started = false
	l.stopRequested = false
	l.mu.Unlock()
}
