//go:build windows

package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
	procGetKeyboardLayout   = user32.NewProc("GetKeyboardLayout")
	procMapVirtualKeyExW    = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx         = user32.NewProc("ToUnicodeEx")
	procVkKeyScanW          = user32.NewProc("VkKeyScanW")
)

// CurrentThreadID returns the native identifier of the calling thread.
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// SetWindowsHookEx installs a global hook of the given id routed to proc.
func SetWindowsHookEx(idHook int32, proc uintptr) (uintptr, error) {
	h, _, err := procSetWindowsHookExW.Call(uintptr(idHook), proc, 0, 0)
	if h == 0 {
		return 0, err
	}
	return h, nil
}

// UnhookWindowsHookEx removes a hook installed by SetWindowsHookEx.
func UnhookWindowsHookEx(hhook uintptr) error {
	r, _, err := procUnhookWindowsHookEx.Call(hhook)
	if r == 0 {
		return err
	}
	return nil
}

// CallNextHookEx forwards the event to the next hook in the chain.
func CallNextHookEx(code int32, wParam, lParam uintptr) uintptr {
	r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return r
}

// GetMessage blocks until a message is posted to the calling thread.
// It returns >0 for a message, 0 for WM_QUIT, and -1 for a wait failure.
func GetMessage(msg *MSG) int32 {
	r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	return int32(r)
}

// PeekMessage polls the queue without blocking. Peeking with PM_NOREMOVE
// forces the OS to create the calling thread's message queue.
func PeekMessage(msg *MSG, filterMin, filterMax, remove uint32) bool {
	r, _, _ := procPeekMessageW.Call(
		uintptr(unsafe.Pointer(msg)),
		0,
		uintptr(filterMin),
		uintptr(filterMax),
		uintptr(remove),
	)
	return r != 0
}

// PostThreadMessage enqueues a message for the given thread's queue.
func PostThreadMessage(threadID, message uint32, wParam, lParam uintptr) error {
	r, _, err := procPostThreadMessageW.Call(
		uintptr(threadID),
		uintptr(message),
		wParam,
		lParam,
	)
	if r == 0 {
		return err
	}
	return nil
}

// GetAsyncKeyState samples the live pressed state of a virtual key.
func GetAsyncKeyState(vk int32) uint16 {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(r)
}

// GetKeyboardLayout returns the active layout handle for a thread.
func GetKeyboardLayout(threadID uint32) uintptr {
	r, _, _ := procGetKeyboardLayout.Call(uintptr(threadID))
	return r
}

// MapVirtualKeyEx translates between virtual key codes and scan codes
// under a specific layout.
func MapVirtualKeyEx(code, mapType uint32, hkl uintptr) uint32 {
	r, _, _ := procMapVirtualKeyExW.Call(uintptr(code), uintptr(mapType), hkl)
	return uint32(r)
}

// ToUnicodeEx translates a virtual key and keyboard state to characters.
// It returns the character count, negative for dead keys. The call mutates
// per-thread keyboard state and must not run inside a hook callback.
func ToUnicodeEx(vk, scan uint32, state *byte, buf *uint16, bufLen int32, flags uint32, hkl uintptr) int32 {
	r, _, _ := procToUnicodeEx.Call(
		uintptr(vk),
		uintptr(scan),
		uintptr(unsafe.Pointer(state)),
		uintptr(unsafe.Pointer(buf)),
		uintptr(bufLen),
		uintptr(flags),
		hkl,
	)
	return int32(r)
}

// VkKeyScan resolves a character to a virtual key plus shift state under
// the active layout. The low byte is the key, the high byte the modifiers;
// 0xFFFF means no mapping exists.
func VkKeyScan(ch uint16) uint16 {
	r, _, _ := procVkKeyScanW.Call(uintptr(ch))
	return uint16(r)
}
