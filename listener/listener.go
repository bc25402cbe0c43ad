// Package listener composes a global hook with a message loop on one
// dedicated OS thread.
//
// Three execution contexts touch a Runtime: the dedicated thread owning the
// message loop and performing all dispatch, the OS hook callback that
// synchronously re-enters that thread whenever a qualifying event occurs,
// and arbitrary external threads calling Stop. The callback only converts
// and enqueues; everything slow happens on the loop thread.
package listener

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/frudas24/inputhook"
	"github.com/frudas24/inputhook/hook"
	"github.com/frudas24/inputhook/msgloop"
)

// WMProcess is the message id converted events are posted with. It must not
// collide with msgloop.WMStop or any configured notification id.
const WMProcess = 0x0410

// State is the lifecycle state of a Runtime.
type State int32

// Lifecycle states. Stopped and Error are terminal.
const (
	StateCreated State = iota
	StateStarting
	StateRunning
	StateStopping
	StateStopped
	StateError
)

// String names the state for diagnostics.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Events is the required capability of a device-specific collaborator.
type Events interface {
	// HookKind selects the hook class this listener captures.
	HookKind() hook.Kind
	// Process performs semantic translation and invokes user callbacks. It
	// runs on the loop-owning thread and may do slow work such as a layout
	// refresh. A returned error stops the runtime and surfaces from Wait.
	Process(wParam, lParam uintptr) error
}

// Converter optionally turns a raw hook event into a postable pair. A false
// result means the event is unsupported by conversion and falls back to
// Handler, when present.
type Converter interface {
	Convert(code int32, msg uintptr, data uintptr) (wParam, lParam uintptr, ok bool)
}

// Handler optionally handles raw events directly and synchronously inside
// the OS callback. It is accepted only when guaranteed fast: the callback
// must return within the OS budget or the hook is silently disabled.
type Handler interface {
	Handle(code int32, msg uintptr, data uintptr)
}

// Notifier optionally receives the configured notification messages, which
// are never treated as ordinary input.
type Notifier interface {
	OnNotification(id uint32, wParam, lParam uintptr)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithSuppress makes the listener suppress every captured event of its hook
// class system-wide.
func WithSuppress(enabled bool) Option {
	return func(r *Runtime) {
		r.suppress.Store(enabled)
	}
}

// WithNotifications routes the given message ids to the Notifier capability.
func WithNotifications(ids ...uint32) Option {
	return func(r *Runtime) {
		for _, id := range ids {
			r.notifications[id] = true
		}
	}
}

// WithRegistry installs the hook through a caller-supplied registry instead
// of the process-wide one.
func WithRegistry(reg *hook.Registry) Option {
	return func(r *Runtime) {
		r.registry = reg
	}
}

// WithPump builds the message loop on a caller-supplied pump instead of the
// native queue.
func WithPump(pump msgloop.Pump) Option {
	return func(r *Runtime) {
		r.pump = pump
	}
}

// Runtime binds a hook and a message loop to one dedicated thread and owns
// the suppression decision for captured events.
type Runtime struct {
	events    Events
	converter Converter
	handler   Handler
	notifier  Notifier

	registry      *hook.Registry
	pump          msgloop.Pump
	notifications map[uint32]bool

	state    atomic.Int32
	suppress atomic.Bool
	launched atomic.Bool

	mu     sync.Mutex
	loop   *msgloop.Loop
	runErr error

	ready chan error
	done  chan struct{}

	// Touched only on the hook callback stack.
	inCallback      bool
	suppressCurrent bool
}

// New creates a runtime for a device-specific collaborator. The optional
// Converter, Handler, and Notifier capabilities are discovered on events;
// at least one of Converter or Handler must be present or no event could
// ever leave the callback.
func New(events Events, opts ...Option) (*Runtime, error) {
	if events == nil {
		return nil, &inputhook.PreconditionError{Op: "listener.New", Reason: "events is required"}
	}
	r := &Runtime{
		events:        events,
		notifications: make(map[uint32]bool),
		ready:         make(chan error, 1),
		done:          make(chan struct{}),
	}
	r.converter, _ = events.(Converter)
	r.handler, _ = events.(Handler)
	r.notifier, _ = events.(Notifier)
	for _, opt := range opts {
		opt(r)
	}

	if r.converter == nil && r.handler == nil {
		return nil, &inputhook.PreconditionError{
			Op:     "listener.New",
			Reason: "events implements neither Converter nor Handler",
		}
	}
	if r.notifications[msgloop.WMStop] || r.notifications[WMProcess] {
		return nil, &inputhook.PreconditionError{
			Op:     "listener.New",
			Reason: "notification ids collide with reserved message ids",
		}
	}
	if len(r.notifications) > 0 && r.notifier == nil {
		return nil, &inputhook.PreconditionError{
			Op:     "listener.New",
			Reason: "notification ids configured but events implements no Notifier",
		}
	}
	return r, nil
}

// State reports the current lifecycle state.
func (r *Runtime) State() State {
	return State(r.state.Load())
}

// SetSuppress switches class-wide suppression of captured events.
func (r *Runtime) SetSuppress(enabled bool) {
	r.suppress.Store(enabled)
}

// Suppressing reports whether class-wide suppression is active.
func (r *Runtime) Suppressing() bool {
	return r.suppress.Load()
}

// SuppressCurrentEvent marks the event being filtered right now for
// suppression: no other hook or application will observe it. It is valid
// only inside the synchronous hook callback handling that event; calling it
// anywhere else panics with a *inputhook.PreconditionError.
func (r *Runtime) SuppressCurrentEvent() {
	if !r.inCallback {
		panic(&inputhook.PreconditionError{
			Op:     "listener.SuppressCurrentEvent",
			Reason: "no event is being filtered by this listener",
		})
	}
	r.suppressCurrent = true
}

// Start spawns the dedicated runtime thread, binds the loop to it, and
// installs the hook. It fails synchronously when hook installation is
// impossible.
func (r *Runtime) Start() error {
	if !r.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return &inputhook.PreconditionError{
			Op:     "listener.Start",
			Reason: fmt.Sprintf("listener is %s", r.State()),
		}
	}
	r.launched.Store(true)
	go r.run()

	if err := <-r.ready; err != nil {
		r.state.Store(int32(StateError))
		r.setErr(err)
		return err
	}
	return nil
}

// Stop shuts the runtime down. It always attempts to stop the message loop;
// when the loop does not exist yet because Stop raced with Start, the
// runtime is treated as already stopped. Stop is idempotent, callable from
// any thread, and once it returns the runtime thread has exited.
func (r *Runtime) Stop() error {
	for {
		switch s := r.State(); s {
		case StateCreated:
			if r.state.CompareAndSwap(int32(StateCreated), int32(StateStopped)) {
				return nil
			}
		case StateStarting, StateRunning:
			if r.state.CompareAndSwap(int32(s), int32(StateStopping)) {
				r.mu.Lock()
				loop := r.loop
				r.mu.Unlock()
				if loop != nil {
					loop.Stop()
				}
				<-r.done
				r.state.Store(int32(StateStopped))
				return nil
			}
		case StateStopping:
			<-r.done
			return nil
		case StateStopped, StateError:
			return nil
		}
	}
}

// Wait blocks until the runtime thread exits and returns the error that
// stopped it, if any.
func (r *Runtime) Wait() error {
	if !r.launched.Load() {
		return &inputhook.PreconditionError{Op: "listener.Wait", Reason: "listener never started"}
	}
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErr
}

// run is the body of the dedicated thread: bind the loop, install the hook,
// pump messages, release everything on every exit path.
func (r *Runtime) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(r.done)

	loop := r.newLoop()
	r.mu.Lock()
	r.loop = loop
	r.mu.Unlock()

	if err := loop.Start(); err != nil {
		r.ready <- err
		return
	}

	handle, err := r.install(loop)
	if err != nil {
		r.ready <- err
		return
	}
	defer func() {
		_ = handle.Uninstall()
	}()

	if !r.state.CompareAndSwap(int32(StateStarting), int32(StateRunning)) {
		// A stop raced ahead of the start; unwind without pumping.
		r.ready <- nil
		return
	}
	r.ready <- nil

	var msg msgloop.Message
	for {
		ok, err := loop.Next(&msg)
		if err != nil {
			r.setErr(err)
			r.state.Store(int32(StateError))
			return
		}
		if !ok || r.State() != StateRunning {
			return
		}
		switch {
		case msg.ID == WMProcess:
			if err := r.events.Process(msg.WParam, msg.LParam); err != nil {
				r.setErr(err)
				r.state.Store(int32(StateError))
				return
			}
		case r.notifications[msg.ID]:
			r.notifier.OnNotification(msg.ID, msg.WParam, msg.LParam)
		}
	}
}

// newLoop builds the message loop, honoring a configured pump.
func (r *Runtime) newLoop() *msgloop.Loop {
	if r.pump != nil {
		return msgloop.NewWithPump(r.pump)
	}
	return msgloop.New()
}

// install registers the hook callback, honoring a configured registry.
func (r *Runtime) install(loop *msgloop.Loop) (*hook.Handle, error) {
	cb := func(code int32, msg uintptr, data uintptr) hook.Verdict {
		return r.onHook(loop, code, msg, data)
	}
	if r.registry != nil {
		return r.registry.Install(r.events.HookKind(), cb)
	}
	return hook.Install(r.events.HookKind(), cb)
}

// onHook runs on the OS callback stack for every captured event: convert
// and post, or fall back to the direct handler, then decide suppression for
// exactly this event.
func (r *Runtime) onHook(loop *msgloop.Loop, code int32, msg uintptr, data uintptr) hook.Verdict {
	r.inCallback = true
	r.suppressCurrent = false
	defer func() {
		r.inCallback = false
	}()

	if r.converter != nil {
		if wParam, lParam, ok := r.converter.Convert(code, msg, data); ok {
			loop.Post(WMProcess, wParam, lParam)
		} else if r.handler != nil {
			r.handler.Handle(code, msg, data)
		}
	} else {
		r.handler.Handle(code, msg, data)
	}

	if r.suppress.Load() || r.suppressCurrent {
		return hook.Suppress
	}
	return hook.Pass
}

// setErr records the first error that stopped the runtime.
func (r *Runtime) setErr(err error) {
	r.mu.Lock()
	if r.runErr == nil {
		r.runErr = err
	}
	r.mu.Unlock()
}
