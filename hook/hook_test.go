package hook_test

import (
	"errors"
	"testing"

	"github.com/frudas24/inputhook"
	"github.com/frudas24/inputhook/hook"
	"github.com/frudas24/inputhook/internal/testutil"
)

// TestInstall_RegistersHandle verifies a hook installs and reports its key.
func TestInstall_RegistersHandle(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	h, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		return hook.Pass
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if h.Kind() != hook.Keyboard || h.ThreadID() != 1 {
		t.Fatalf("unexpected handle key: kind=%d thread=%d", h.Kind(), h.ThreadID())
	}
	if backend.Installs() != 1 {
		t.Fatalf("expected 1 backend install, got %d", backend.Installs())
	}
}

// TestInstall_NilCallback verifies a missing callback is rejected.
func TestInstall_NilCallback(t *testing.T) {
	reg := hook.NewRegistry(testutil.NewFakeBackend())

	_, err := reg.Install(hook.Keyboard, nil)
	var precond *inputhook.PreconditionError
	if !errors.As(err, &precond) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
}

// TestInstall_DoubleRejected verifies a second install for a live
// (kind, thread) pair fails without replacing the existing registration.
func TestInstall_DoubleRejected(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	calls := 0
	first, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		calls++
		return hook.Pass
	})
	if err != nil {
		t.Fatalf("first install failed: %v", err)
	}

	_, err = reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		t.Fatalf("replacement callback must never run")
		return hook.Pass
	})
	var precond *inputhook.PreconditionError
	if !errors.As(err, &precond) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if backend.Installs() != 1 {
		t.Fatalf("expected 1 backend install, got %d", backend.Installs())
	}

	backend.Emit(hook.Keyboard, 0, 0x0100, 0)
	if calls != 1 {
		t.Fatalf("expected original callback to stay live, got %d calls", calls)
	}
	if err := first.Uninstall(); err != nil {
		t.Fatalf("uninstall failed: %v", err)
	}
}

// TestInstall_DifferentKindsCoexist verifies keyboard and mouse hooks can
// live on the same thread.
func TestInstall_DifferentKindsCoexist(t *testing.T) {
	reg := hook.NewRegistry(testutil.NewFakeBackend())

	pass := func(code int32, msg, data uintptr) hook.Verdict { return hook.Pass }
	if _, err := reg.Install(hook.Keyboard, pass); err != nil {
		t.Fatalf("keyboard install failed: %v", err)
	}
	if _, err := reg.Install(hook.Mouse, pass); err != nil {
		t.Fatalf("mouse install failed: %v", err)
	}
}

// TestInstall_BackendFailure verifies an OS refusal surfaces as a
// NativeResourceError and frees the registration.
func TestInstall_BackendFailure(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.InstallErr = errors.New("access denied")
	reg := hook.NewRegistry(backend)

	pass := func(code int32, msg, data uintptr) hook.Verdict { return hook.Pass }
	_, err := reg.Install(hook.Keyboard, pass)
	var native *inputhook.NativeResourceError
	if !errors.As(err, &native) {
		t.Fatalf("expected NativeResourceError, got %v", err)
	}

	backend.InstallErr = nil
	if _, err := reg.Install(hook.Keyboard, pass); err != nil {
		t.Fatalf("expected registration to be free after failure, got %v", err)
	}
}

// TestUninstall_ReleasesOnce verifies release happens exactly once and
// repeated uninstalls are no-ops.
func TestUninstall_ReleasesOnce(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	h, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		return hook.Suppress
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if err := h.Uninstall(); err != nil {
		t.Fatalf("uninstall failed: %v", err)
	}
	if err := h.Uninstall(); err != nil {
		t.Fatalf("second uninstall must be a no-op, got %v", err)
	}
	if got := backend.Uninstalls(); len(got) != 1 {
		t.Fatalf("expected exactly 1 backend uninstall, got %d", len(got))
	}

	if backend.Emit(hook.Keyboard, 0, 0x0100, 0) {
		t.Fatalf("uninstalled hook must not suppress")
	}
}

// TestDispatch_SuppressVerdict verifies a Suppress verdict stops propagation.
func TestDispatch_SuppressVerdict(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	verdict := hook.Pass
	_, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		return verdict
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}

	if backend.Emit(hook.Keyboard, 0, 0x0100, 0) {
		t.Fatalf("Pass verdict must not suppress")
	}
	verdict = hook.Suppress
	if !backend.Emit(hook.Keyboard, 0, 0x0100, 0) {
		t.Fatalf("Suppress verdict must suppress")
	}
}

// TestDispatch_PanicSwallowed verifies callback panics never escape the
// trampoline and the event is not suppressed.
func TestDispatch_PanicSwallowed(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	_, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		panic("user callback error")
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}

	if backend.Emit(hook.Keyboard, 0, 0x0100, 0) {
		t.Fatalf("panicking callback must not suppress")
	}
}

// TestDispatch_OtherThreadIgnored verifies events for threads without a
// registration pass through.
func TestDispatch_OtherThreadIgnored(t *testing.T) {
	backend := testutil.NewFakeBackend()
	reg := hook.NewRegistry(backend)

	_, err := reg.Install(hook.Keyboard, func(code int32, msg, data uintptr) hook.Verdict {
		return hook.Suppress
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}

	backend.Thread = 2
	if backend.Emit(hook.Keyboard, 0, 0x0100, 0) {
		t.Fatalf("event on unregistered thread must not suppress")
	}
}
