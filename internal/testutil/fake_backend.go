// Package testutil provides in-memory fakes for the native seams.
package testutil

import (
	"sync"

	"github.com/frudas24/inputhook/hook"
)

// FakeBackend implements hook.Backend and records installs for tests.
type FakeBackend struct {
	mu sync.Mutex

	// Thread is the identifier reported for every caller.
	Thread uint32
	// InstallErr, when set, makes Install fail.
	InstallErr error

	installs   int
	uninstalls []uintptr
	nextHandle uintptr
	dispatch   map[hook.Kind]hook.Dispatch
}

// NewFakeBackend returns a backend that reports thread id 1.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Thread:   1,
		dispatch: make(map[hook.Kind]hook.Dispatch),
	}
}

// ThreadID reports the configured thread id for every caller.
func (b *FakeBackend) ThreadID() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Thread
}

// Install records the installation and captures the dispatch trampoline.
func (b *FakeBackend) Install(kind hook.Kind, dispatch hook.Dispatch) (uintptr, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.InstallErr != nil {
		return 0, b.InstallErr
	}
	b.installs++
	b.nextHandle++
	b.dispatch[kind] = dispatch
	return b.nextHandle, nil
}

// Uninstall records the released handle.
func (b *FakeBackend) Uninstall(hhook uintptr) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uninstalls = append(b.uninstalls, hhook)
	return nil
}

// Emit drives one raw event through the trampoline installed for kind and
// reports whether the event was suppressed.
func (b *FakeBackend) Emit(kind hook.Kind, code int32, msg, data uintptr) bool {
	b.mu.Lock()
	dispatch := b.dispatch[kind]
	b.mu.Unlock()
	if dispatch == nil {
		return false
	}
	return dispatch(code, msg, data)
}

// Installs reports how many installs succeeded.
func (b *FakeBackend) Installs() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.installs
}

// Uninstalls reports the handles released so far.
func (b *FakeBackend) Uninstalls() []uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]uintptr(nil), b.uninstalls...)
}
