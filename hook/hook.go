// Package hook wraps installation of Windows global input hooks.
//
// A process may hold at most one live hook per (kind, thread) pair. The
// package keeps an explicit registration table guarded by a single mutex;
// the OS-facing trampoline looks up the owning handle by the calling thread
// and must return within the OS budget, so callbacks only convert and
// enqueue.
package hook

import (
	"fmt"
	"sync"

	"github.com/frudas24/inputhook"
	"github.com/frudas24/inputhook/internal/winapi"
)

// Kind identifies a class of global hook.
type Kind int32

// The two low-level input hooks.
const (
	Keyboard Kind = winapi.WH_KEYBOARD_LL
	Mouse    Kind = winapi.WH_MOUSE_LL
)

// Verdict is returned by a Callback to control event propagation.
type Verdict int

// Pass forwards the event down the hook chain; Suppress stops propagation
// to every other observer, including the target application.
const (
	Pass Verdict = iota
	Suppress
)

// Callback observes one hook event. It runs on an OS-managed stack belonging
// to the installing thread and must never block. Panics inside the callback
// are swallowed so the trampoline always returns.
type Callback func(code int32, msg uintptr, data uintptr) Verdict

// Dispatch routes one raw hook invocation into a registry and reports
// whether the event must be suppressed.
type Dispatch func(code int32, msg uintptr, data uintptr) bool

// Backend abstracts the native hook facility so the registration table can
// be exercised without a Windows session.
type Backend interface {
	// ThreadID identifies the calling thread.
	ThreadID() uint32
	// Install installs a hook of the given kind routing events to dispatch.
	Install(kind Kind, dispatch Dispatch) (uintptr, error)
	// Uninstall removes a previously installed hook.
	Uninstall(hhook uintptr) error
}

// registration keys the table of live hooks.
type registration struct {
	kind   Kind
	thread uint32
}

// Registry tracks the live hooks of one process.
type Registry struct {
	mu      sync.Mutex
	backend Backend
	live    map[registration]*Handle
}

// NewRegistry creates a registration table on top of a backend.
func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		live:    make(map[registration]*Handle),
	}
}

var defaultRegistry = NewRegistry(newSystemBackend())

// Install installs a hook on the calling thread using the process-wide
// registry. The callback runs until the returned handle is uninstalled.
func Install(kind Kind, cb Callback) (*Handle, error) {
	return defaultRegistry.Install(kind, cb)
}

// Install installs a hook of the given kind for the calling thread.
// A second install for a live (kind, thread) pair fails without touching
// the existing registration.
func (r *Registry) Install(kind Kind, cb Callback) (*Handle, error) {
	if cb == nil {
		return nil, &inputhook.PreconditionError{
			Op:     "hook.Install",
			Reason: "callback is required",
		}
	}
	key := registration{kind: kind, thread: r.backend.ThreadID()}

	h := &Handle{registry: r, key: key, callback: cb}
	r.mu.Lock()
	if _, exists := r.live[key]; exists {
		r.mu.Unlock()
		return nil, &inputhook.PreconditionError{
			Op:     "hook.Install",
			Reason: fmt.Sprintf("hook kind %d already installed on thread %d", kind, key.thread),
		}
	}
	r.live[key] = h
	r.mu.Unlock()

	hhook, err := r.backend.Install(kind, r.dispatchFor(kind))
	if err != nil {
		r.mu.Lock()
		delete(r.live, key)
		r.mu.Unlock()
		return nil, &inputhook.NativeResourceError{Op: "SetWindowsHookEx", Err: err}
	}

	r.mu.Lock()
	h.hhook = hhook
	r.mu.Unlock()
	return h, nil
}

// dispatchFor builds the trampoline body for one hook kind. The callback
// result is interpreted here: Suppress maps to the non-zero hook return,
// anything else continues the chain, and panics are discarded so the
// trampoline returns promptly on every path.
func (r *Registry) dispatchFor(kind Kind) Dispatch {
	return func(code int32, msg uintptr, data uintptr) (suppress bool) {
		r.mu.Lock()
		h := r.live[registration{kind: kind, thread: r.backend.ThreadID()}]
		r.mu.Unlock()
		if h == nil {
			return false
		}
		defer func() {
			// Errors raised by user code must not escape into OS code.
			_ = recover()
		}()
		if h.callback(code, msg, data) == Suppress {
			suppress = true
		}
		return suppress
	}
}

// Handle is a scoped wrapper around one installed hook.
type Handle struct {
	registry *Registry
	key      registration
	callback Callback
	hhook    uintptr
	released sync.Once
}

// Kind reports the hook kind this handle was installed for.
func (h *Handle) Kind() Kind {
	return h.key.kind
}

// ThreadID reports the thread the hook is bound to.
func (h *Handle) ThreadID() uint32 {
	return h.key.thread
}

// Uninstall removes the hook and frees its registration. It releases the
// native resource exactly once; repeated calls are no-ops.
func (h *Handle) Uninstall() error {
	var err error
	h.released.Do(func() {
		h.registry.mu.Lock()
		delete(h.registry.live, h.key)
		hhook := h.hhook
		h.registry.mu.Unlock()

		if uerr := h.registry.backend.Uninstall(hhook); uerr != nil {
			err = &inputhook.NativeResourceError{Op: "UnhookWindowsHookEx", Err: uerr}
		}
	})
	return err
}
