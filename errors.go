package inputhook

import "fmt"

// PreconditionError reports API misuse: iterating a loop before starting it,
// installing a second hook for a live (kind, thread) pair, or requesting
// suppression outside the hook callback. It is always fatal to the call.
type PreconditionError struct {
	Op     string
	Reason string
}

// Error formats the misused operation and the violated precondition.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NativeResourceError reports that the OS refused an install, remove, or
// translate call. It is surfaced synchronously to the caller and never
// retried.
type NativeResourceError struct {
	Op  string
	Err error
}

// Error formats the failing native operation.
func (e *NativeResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Op)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying OS error.
func (e *NativeResourceError) Unwrap() error {
	return e.Err
}
