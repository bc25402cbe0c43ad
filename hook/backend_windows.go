//go:build windows

package hook

import (
	"sync"
	"syscall"

	"github.com/frudas24/inputhook/internal/winapi"
)

// systemBackend installs hooks through user32. One callback trampoline is
// created per kind for the lifetime of the process, because callbacks made
// with syscall.NewCallback are never released.
type systemBackend struct{}

// newSystemBackend returns the native hook backend.
func newSystemBackend() Backend {
	return systemBackend{}
}

var (
	sysMu       sync.Mutex
	sysDispatch = map[Kind]Dispatch{}
	sysProc     = map[Kind]uintptr{}
)

// ThreadID identifies the calling native thread.
func (systemBackend) ThreadID() uint32 {
	return winapi.CurrentThreadID()
}

// Install points the per-kind trampoline at dispatch and installs the hook.
func (systemBackend) Install(kind Kind, dispatch Dispatch) (uintptr, error) {
	sysMu.Lock()
	sysDispatch[kind] = dispatch
	proc, ok := sysProc[kind]
	if !ok {
		k := kind
		proc = syscall.NewCallback(func(code int, wParam, lParam uintptr) uintptr {
			return hookProc(k, int32(code), wParam, lParam)
		})
		sysProc[kind] = proc
	}
	sysMu.Unlock()

	return winapi.SetWindowsHookEx(int32(kind), proc)
}

// Uninstall removes the native hook.
func (systemBackend) Uninstall(hhook uintptr) error {
	return winapi.UnhookWindowsHookEx(hhook)
}

// hookProc is the body shared by the per-kind trampolines. A suppressed
// event returns non-zero so no other hook or application observes it;
// everything else continues down the chain.
func hookProc(kind Kind, code int32, wParam, lParam uintptr) uintptr {
	sysMu.Lock()
	dispatch := sysDispatch[kind]
	sysMu.Unlock()

	if dispatch != nil && dispatch(code, wParam, lParam) {
		return 1
	}
	return winapi.CallNextHookEx(code, wParam, lParam)
}
