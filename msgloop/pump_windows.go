//go:build windows

package msgloop

import "github.com/frudas24/inputhook/internal/winapi"

// systemPump drains the native queue of the calling thread.
type systemPump struct{}

// newSystemPump returns the native message pump.
func newSystemPump() Pump {
	return systemPump{}
}

// ThreadID identifies the calling native thread.
func (systemPump) ThreadID() uint32 {
	return winapi.CurrentThreadID()
}

// Ready forces creation of the calling thread's message queue by peeking
// without removing.
func (systemPump) Ready() error {
	var msg winapi.MSG
	winapi.PeekMessage(&msg, 0x0400, 0x0400, winapi.PM_NOREMOVE)
	return nil
}

// Get blocks in GetMessageW until a message is posted to this thread.
func (systemPump) Get(msg *Message) int32 {
	var raw winapi.MSG
	r := winapi.GetMessage(&raw)
	if r > 0 {
		msg.ID = raw.Message
		msg.WParam = raw.WParam
		msg.LParam = raw.LParam
	}
	return r
}

// Post enqueues a thread message for threadID.
func (systemPump) Post(threadID, id uint32, wParam, lParam uintptr) error {
	return winapi.PostThreadMessage(threadID, id, wParam, lParam)
}
