//go:build !windows

package msgloop

import "errors"

// ErrUnsupported indicates native message queues are only available on
// Windows.
var ErrUnsupported = errors.New("msgloop is only supported on Windows")

// systemPump is a placeholder pump for non-Windows builds.
type systemPump struct{}

// newSystemPump returns a non-functional pump on non-Windows platforms.
func newSystemPump() Pump {
	return systemPump{}
}

// ThreadID returns zero.
func (systemPump) ThreadID() uint32 {
	return 0
}

// Ready returns ErrUnsupported.
func (systemPump) Ready() error {
	return ErrUnsupported
}

// Get reports a wait failure.
func (systemPump) Get(msg *Message) int32 {
	_ = msg
	return -1
}

// Post returns ErrUnsupported.
func (systemPump) Post(threadID, id uint32, wParam, lParam uintptr) error {
	_ = threadID
	_ = id
	_ = wParam
	_ = lParam
	return ErrUnsupported
}
