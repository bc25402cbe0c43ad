//go:build windows

package synth

import (
	"fmt"
	"unicode/utf16"

	"github.com/lxn/win"

	"github.com/frudas24/inputhook/internal/winapi"
	"github.com/frudas24/inputhook/layout"
)

// KeyDown presses a virtual key.
func (w *WinInjector) KeyDown(vk uint16) error {
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk})
}

// KeyUp releases a virtual key.
func (w *WinInjector) KeyUp(vk uint16) error {
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}

// KeyTap presses and releases a virtual key. The release is still attempted
// when the press fails, so no key is left held.
func (w *WinInjector) KeyTap(vk uint16) error {
	if err := w.KeyDown(vk); err != nil {
		_ = w.KeyUp(vk)
		return err
	}
	return w.KeyUp(vk)
}

// TypeUnicode types Unicode text into the focused window without consulting
// the keyboard layout.
func (w *WinInjector) TypeUnicode(text string) error {
	if text == "" {
		return nil
	}
	for _, code := range utf16.Encode([]rune(text)) {
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}); err != nil {
			return err
		}
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}); err != nil {
			return err
		}
	}
	return nil
}

// KeyFromChar resolves the virtual key and modifiers that produce ch under
// the active layout.
func KeyFromChar(ch rune) (uint16, layout.Modifiers, error) {
	if ch > 0xFFFF {
		return 0, layout.Modifiers{}, fmt.Errorf("no key mapping for %q", ch)
	}
	scan := winapi.VkKeyScan(uint16(ch))
	if scan == 0xFFFF {
		return 0, layout.Modifiers{}, fmt.Errorf("no key mapping for %q", ch)
	}
	mods := layout.Modifiers{
		Shift: scan&0x0100 != 0,
		Ctrl:  scan&0x0200 != 0,
		Alt:   scan&0x0400 != 0,
	}
	return scan & 0xFF, mods, nil
}
