// Package main starts the inputhook daemon.
package main

import (
	"log"
	"unsafe"

	"github.com/frudas24/inputhook/hook"
	"github.com/frudas24/inputhook/internal/tap"
	"github.com/frudas24/inputhook/internal/winapi"
	"github.com/frudas24/inputhook/layout"
)

// keyboardEvents adapts raw keyboard hook payloads into tap events. The
// conversion runs on the OS callback stack and only extracts the virtual
// key; translation happens later on the listener thread.
type keyboardEvents struct {
	translator  *layout.Translator
	broadcast   func(tap.Event)
	logEvents   bool
	suppressing bool
}

// newKeyboardEvents creates the keyboard collaborator.
func newKeyboardEvents(translator *layout.Translator, broadcast func(tap.Event), logEvents, suppressing bool) *keyboardEvents {
	return &keyboardEvents{
		translator:  translator,
		broadcast:   broadcast,
		logEvents:   logEvents,
		suppressing: suppressing,
	}
}

// HookKind selects the low-level keyboard hook.
func (k *keyboardEvents) HookKind() hook.Kind {
	return hook.Keyboard
}

// Convert packs the hook payload into a postable pair.
func (k *keyboardEvents) Convert(code int32, msg uintptr, data uintptr) (uintptr, uintptr, bool) {
	if code != winapi.HC_ACTION {
		return 0, 0, false
	}
	kb := (*winapi.KBDLLHOOKSTRUCT)(unsafe.Pointer(data))
	return msg, uintptr(kb.VkCode), true
}

// Process translates the posted key and publishes it.
func (k *keyboardEvents) Process(wParam, lParam uintptr) error {
	vk := uint32(lParam)
	press := wParam == winapi.WM_KEYDOWN || wParam == winapi.WM_SYSKEYDOWN
	info := k.translator.Translate(vk, press)

	ev := tap.Event{
		Device:     "keyboard",
		Kind:       "up",
		VK:         vk,
		Scan:       info.Scan,
		Dead:       info.IsDead,
		Suppressed: k.suppressing,
	}
	if press {
		ev.Kind = "down"
	}
	if info.HasChar {
		ev.Char = string(info.Char)
	}

	k.broadcast(ev)
	if k.logEvents {
		log.Printf("keyboard: %s vk=0x%02X scan=0x%02X char=%q dead=%v", ev.Kind, vk, info.Scan, ev.Char, info.IsDead)
	}
	return nil
}

// OnNotification refreshes the layout cache when the active layout changes.
// The refresh runs on the listener thread, never inside the hook callback.
func (k *keyboardEvents) OnNotification(id uint32, wParam, lParam uintptr) {
	if id != winapi.WM_INPUTLANGCHANGE {
		return
	}
	if err := k.translator.UpdateLayout(); err != nil {
		log.Printf("layout: refresh failed: %v", err)
		return
	}
	log.Printf("layout: refreshed")
}

// mouseEvents adapts raw mouse hook payloads into tap events.
type mouseEvents struct {
	broadcast   func(tap.Event)
	logEvents   bool
	suppressing bool
}

// newMouseEvents creates the mouse collaborator.
func newMouseEvents(broadcast func(tap.Event), logEvents, suppressing bool) *mouseEvents {
	return &mouseEvents{
		broadcast:   broadcast,
		logEvents:   logEvents,
		suppressing: suppressing,
	}
}

// HookKind selects the low-level mouse hook.
func (m *mouseEvents) HookKind() hook.Kind {
	return hook.Mouse
}

// Convert packs the hook payload into a postable pair. The message id and
// wheel delta share wParam; the two screen coordinates share the 64-bit
// lParam.
func (m *mouseEvents) Convert(code int32, msg uintptr, data uintptr) (uintptr, uintptr, bool) {
	if code != winapi.HC_ACTION {
		return 0, 0, false
	}
	ms := (*winapi.MSLLHOOKSTRUCT)(unsafe.Pointer(data))
	wParam := msg | uintptr(ms.MouseData>>16)<<16
	lParam := uintptr(uint32(ms.Pt.X)) | uintptr(uint32(ms.Pt.Y))<<32
	return wParam, lParam, true
}

// Process unpacks the posted mouse event and publishes it.
func (m *mouseEvents) Process(wParam, lParam uintptr) error {
	msgID := uint32(wParam) & 0xFFFF
	delta := int16(uint32(wParam) >> 16)
	x := int32(uint32(lParam))
	y := int32(uint32(lParam >> 32))

	kind, button := mouseKind(msgID)
	if kind == "" {
		return nil
	}
	ev := tap.Event{
		Device:     "mouse",
		Kind:       kind,
		Button:     button,
		X:          x,
		Y:          y,
		Suppressed: m.suppressing,
	}
	if kind == "wheel" {
		ev.Delta = delta
	}

	m.broadcast(ev)
	if m.logEvents {
		log.Printf("mouse: %s button=%q x=%d y=%d delta=%d", kind, button, x, y, ev.Delta)
	}
	return nil
}

// mouseKind names a low-level mouse message and its button, when any.
func mouseKind(msgID uint32) (string, string) {
	switch msgID {
	case winapi.WM_MOUSEMOVE:
		return "move", ""
	case winapi.WM_LBUTTONDOWN:
		return "down", "left"
	case winapi.WM_LBUTTONUP:
		return "up", "left"
	case winapi.WM_RBUTTONDOWN:
		return "down", "right"
	case winapi.WM_RBUTTONUP:
		return "up", "right"
	case winapi.WM_MBUTTONDOWN:
		return "down", "middle"
	case winapi.WM_MBUTTONUP:
		return "up", "middle"
	case winapi.WM_MOUSEWHEEL, winapi.WM_MOUSEHWHEEL:
		return "wheel", ""
	default:
		return "", ""
	}
}
