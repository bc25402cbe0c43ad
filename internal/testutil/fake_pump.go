package testutil

import (
	"fmt"
	"sync"

	"github.com/frudas24/inputhook/msgloop"
)

// FakePump implements msgloop.Pump on an in-memory queue.
type FakePump struct {
	// Thread is the identifier reported for every caller.
	Thread uint32

	mu     sync.Mutex
	closed bool
	posts  int
	ch     chan msgloop.Message
}

// NewFakePump returns a pump that reports thread id 1.
func NewFakePump() *FakePump {
	return &FakePump{
		Thread: 1,
		ch:     make(chan msgloop.Message, 256),
	}
}

// ThreadID reports the configured thread id for every caller.
func (p *FakePump) ThreadID() uint32 {
	return p.Thread
}

// Ready reports the queue as created.
func (p *FakePump) Ready() error {
	return nil
}

// Get blocks until a message is posted or the queue is closed. A closed
// queue reports a wait failure.
func (p *FakePump) Get(msg *msgloop.Message) int32 {
	got, ok := <-p.ch
	if !ok {
		return -1
	}
	*msg = got
	return 1
}

// Post enqueues a message for the configured thread.
func (p *FakePump) Post(threadID, id uint32, wParam, lParam uintptr) error {
	if threadID != p.Thread {
		return fmt.Errorf("no thread %d", threadID)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("queue closed")
	}
	p.posts++
	p.ch <- msgloop.Message{ID: id, WParam: wParam, LParam: lParam}
	return nil
}

// Close simulates the bound thread terminating: waiters observe a wait
// failure and further posts fail.
func (p *FakePump) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
}

// Posts reports how many messages were accepted.
func (p *FakePump) Posts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.posts
}
