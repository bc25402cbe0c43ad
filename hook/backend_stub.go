//go:build !windows

package hook

import "errors"

// ErrUnsupported indicates global hooks are only available on Windows.
var ErrUnsupported = errors.New("hook is only supported on Windows")

// systemBackend is a placeholder backend for non-Windows builds.
type systemBackend struct{}

// newSystemBackend returns a non-functional backend on non-Windows platforms.
func newSystemBackend() Backend {
	return systemBackend{}
}

// ThreadID returns zero.
func (systemBackend) ThreadID() uint32 {
	return 0
}

// Install returns ErrUnsupported.
func (systemBackend) Install(kind Kind, dispatch Dispatch) (uintptr, error) {
	_ = kind
	_ = dispatch
	return 0, ErrUnsupported
}

// Uninstall returns ErrUnsupported.
func (systemBackend) Uninstall(hhook uintptr) error {
	_ = hhook
	return ErrUnsupported
}
