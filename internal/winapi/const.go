// Package winapi mirrors the Win32 declarations used by the hook backend.
package winapi

// Hook identifiers and the hook-code threshold for actionable events.
const (
	WH_KEYBOARD_LL = 13
	WH_MOUSE_LL    = 14
	HC_ACTION      = 0
)

// Window messages produced by the low-level keyboard hook.
const (
	WM_KEYDOWN    = 0x0100
	WM_KEYUP      = 0x0101
	WM_SYSKEYDOWN = 0x0104
	WM_SYSKEYUP   = 0x0105
)

// Window messages produced by the low-level mouse hook.
const (
	WM_MOUSEMOVE   = 0x0200
	WM_LBUTTONDOWN = 0x0201
	WM_LBUTTONUP   = 0x0202
	WM_RBUTTONDOWN = 0x0204
	WM_RBUTTONUP   = 0x0205
	WM_MBUTTONDOWN = 0x0207
	WM_MBUTTONUP   = 0x0208
	WM_MOUSEWHEEL  = 0x020A
	WM_MOUSEHWHEEL = 0x020E
)

// WM_INPUTLANGCHANGE is broadcast when the active keyboard layout changes.
const WM_INPUTLANGCHANGE = 0x0051

// Virtual key codes consulted during layout translation.
const (
	VK_SHIFT   = 0x10
	VK_CONTROL = 0x11
	VK_MENU    = 0x12
	VK_DECIMAL = 0x6E
)

// MapVirtualKeyEx translation directions.
const (
	MAPVK_VK_TO_VSC = 0
	MAPVK_VSC_TO_VK = 1
)

// PM_NOREMOVE peeks without draining; used to force queue creation.
const PM_NOREMOVE = 0

// LLKHF_UP is set in KBDLLHOOKSTRUCT.Flags for key releases.
const LLKHF_UP = 0x0080
