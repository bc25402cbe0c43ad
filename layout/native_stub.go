//go:build !windows

package layout

import "errors"

// ErrUnsupported indicates layout translation is only available on Windows.
var ErrUnsupported = errors.New("layout is only supported on Windows")

// systemNative is a placeholder facility for non-Windows builds.
type systemNative struct{}

// newSystemNative returns a non-functional facility on non-Windows platforms.
func newSystemNative() Native {
	return systemNative{}
}

// ActiveLayout returns ErrUnsupported.
func (systemNative) ActiveLayout() (uintptr, error) {
	return 0, ErrUnsupported
}

// ToVirtualKey returns zero.
func (systemNative) ToVirtualKey(scan uint32, hkl uintptr) uint32 {
	_ = scan
	_ = hkl
	return 0
}

// ToScanCode returns zero.
func (systemNative) ToScanCode(vk uint32, hkl uintptr) uint32 {
	_ = vk
	_ = hkl
	return 0
}

// Translate reports no character.
func (systemNative) Translate(vk, scan uint32, state *[256]byte, hkl uintptr) (rune, int) {
	_ = vk
	_ = scan
	_ = state
	_ = hkl
	return 0, 0
}

// ModifierPressed reports released.
func (systemNative) ModifierPressed(vk int32) bool {
	_ = vk
	return false
}
