//go:build windows

package layout

import (
	"errors"

	"github.com/frudas24/inputhook/internal/winapi"
)

// systemNative resolves layout queries through user32.
type systemNative struct{}

// newSystemNative returns the native layout facility.
func newSystemNative() Native {
	return systemNative{}
}

// ActiveLayout returns the calling thread's keyboard layout handle.
func (systemNative) ActiveLayout() (uintptr, error) {
	hkl := winapi.GetKeyboardLayout(winapi.CurrentThreadID())
	if hkl == 0 {
		return 0, errors.New("no active keyboard layout")
	}
	return hkl, nil
}

// ToVirtualKey maps a scan code to its virtual key under hkl.
func (systemNative) ToVirtualKey(scan uint32, hkl uintptr) uint32 {
	return winapi.MapVirtualKeyEx(scan, winapi.MAPVK_VSC_TO_VK, hkl)
}

// ToScanCode maps a virtual key to its scan code under hkl.
func (systemNative) ToScanCode(vk uint32, hkl uintptr) uint32 {
	return winapi.MapVirtualKeyEx(vk, winapi.MAPVK_VK_TO_VSC, hkl)
}

// Translate runs ToUnicodeEx for one virtual key under the given state.
func (systemNative) Translate(vk, scan uint32, state *[256]byte, hkl uintptr) (rune, int) {
	var buf [5]uint16
	count := winapi.ToUnicodeEx(vk, scan, &state[0], &buf[0], int32(len(buf)), 0, hkl)
	if count == 0 {
		return 0, 0
	}
	return rune(buf[0]), int(count)
}

// ModifierPressed samples a modifier with GetAsyncKeyState. Only the held
// bit counts; the low was-pressed-since-last-call bit is ignored.
func (systemNative) ModifierPressed(vk int32) bool {
	return winapi.GetAsyncKeyState(vk)&0x8000 != 0
}
