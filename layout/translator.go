// Package layout translates virtual keys and scan codes to the characters
// the active keyboard layout would produce.
//
// Translation is served from an immutable cache keyed by modifier state and
// indexed by scan code. Rebuilding the cache calls ToUnicodeEx, which
// mutates per-thread keyboard state, so a rebuild must never run inside a
// hook callback; the finished cache is published with a single atomic
// pointer swap, so readers see either fully-old or fully-new state without
// read-side locking.
package layout

import (
	"sync/atomic"

	"github.com/frudas24/inputhook"
	"github.com/frudas24/inputhook/internal/winapi"
)

// Modifiers is the pressed state of the three translation modifiers.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// KeyInfo is the result of translating one virtual key.
type KeyInfo struct {
	// Char is the character the layout produces, valid when HasChar is set.
	Char rune
	// HasChar reports whether the key maps to a character at all.
	HasChar bool
	// IsDead reports that the key modifies the next character instead of
	// producing one itself.
	IsDead bool
	// VK is the virtual key code the lookup was made for.
	VK uint32
	// Scan is the scan code derived for VK under the active layout.
	Scan uint32
}

// Native abstracts the layout-dependent OS calls so the cache build can be
// exercised without a Windows session.
type Native interface {
	// ActiveLayout returns the handle of the calling thread's layout.
	ActiveLayout() (uintptr, error)
	// ToVirtualKey maps a scan code to a virtual key under a layout.
	ToVirtualKey(scan uint32, hkl uintptr) uint32
	// ToScanCode maps a virtual key to a scan code under a layout.
	ToScanCode(vk uint32, hkl uintptr) uint32
	// Translate asks the layout what character vk produces under the given
	// keyboard state. The count is positive for a character, negative for a
	// dead key, and zero when the key produces nothing. The call mutates
	// per-thread keyboard state.
	Translate(vk, scan uint32, state *[256]byte, hkl uintptr) (rune, int)
	// ModifierPressed samples the live pressed state of a virtual key.
	ModifierPressed(vk int32) bool
}

// entry is one cached (character, dead) slot.
type entry struct {
	char    rune
	hasChar bool
	dead    bool
}

// table is one fully built layout cache. It is never patched in place;
// refresh replaces the whole table.
type table struct {
	hkl  uintptr
	vks  [256]uint32
	data map[Modifiers]*[256]entry
}

// Translator serves layout lookups from the cached table.
type Translator struct {
	native Native
	table  atomic.Pointer[table]
}

// New creates a translator on the native layout facility and builds the
// initial cache.
func New() (*Translator, error) {
	return NewWithNative(newSystemNative())
}

// NewWithNative creates a translator on a caller-supplied native facility.
func NewWithNative(native Native) (*Translator, error) {
	t := &Translator{native: native}
	if err := t.UpdateLayout(); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateLayout rebuilds the full cache for the active layout and publishes
// it wholesale. It must not be called from inside a hook callback.
func (t *Translator) UpdateLayout() error {
	tab, err := t.build()
	if err != nil {
		return err
	}
	t.table.Store(tab)
	return nil
}

// Translate looks up the character a virtual key produces right now. The
// modifier state is sampled asynchronously, so it may differ slightly from
// the state at event time.
func (t *Translator) Translate(vk uint32, isPress bool) KeyInfo {
	_ = isPress // presses and releases share one mapping

	tab := t.table.Load()
	scan := t.native.ToScanCode(vk, tab.hkl)
	info := KeyInfo{VK: vk, Scan: scan}
	if scan >= uint32(len(tab.vks)) {
		return info
	}
	e := tab.data[t.modifierState()][scan]
	info.Char = e.char
	info.HasChar = e.hasChar
	info.IsDead = e.dead
	return info
}

// CharFromScan returns the no-modifier character for a scan code, if any.
func (t *Translator) CharFromScan(scan uint32) (rune, bool) {
	tab := t.table.Load()
	if scan >= uint32(len(tab.vks)) {
		return 0, false
	}
	e := tab.data[Modifiers{}][scan]
	if !e.hasChar {
		return 0, false
	}
	return e.char, true
}

// build performs the O(256x8) cache construction: every scan code is mapped
// to its virtual key, then translated under each of the eight modifier
// combinations.
func (t *Translator) build() (*table, error) {
	hkl, err := t.native.ActiveLayout()
	if err != nil {
		return nil, &inputhook.NativeResourceError{Op: "GetKeyboardLayout", Err: err}
	}

	tab := &table{hkl: hkl, data: make(map[Modifiers]*[256]entry, 8)}
	for scan := range tab.vks {
		tab.vks[scan] = t.native.ToVirtualKey(uint32(scan), hkl)
	}
	flushScan := t.native.ToScanCode(winapi.VK_DECIMAL, hkl)

	var state [256]byte
	for _, mods := range modifierCombinations() {
		current := new([256]entry)
		tab.data[mods] = current

		state[winapi.VK_SHIFT] = keyState(mods.Shift)
		state[winapi.VK_CONTROL] = keyState(mods.Ctrl)
		state[winapi.VK_MENU] = keyState(mods.Alt)

		for scan, vk := range tab.vks {
			char, count := t.native.Translate(vk, uint32(scan), &state, hkl)
			if count == 0 {
				// Scan codes producing no character stay empty; that is
				// not an error.
				continue
			}
			current[scan] = entry{char: char, hasChar: true, dead: count < 0}
			if count < 0 {
				// One corrective call flushes the layout's dead-key state,
				// else subsequent translations are wrongly modified.
				t.native.Translate(winapi.VK_DECIMAL, flushScan, &state, hkl)
			}
		}
	}
	return tab, nil
}

// modifierState samples the three modifiers. The sampling is asynchronous
// relative to the event being translated.
func (t *Translator) modifierState() Modifiers {
	return Modifiers{
		Shift: t.native.ModifierPressed(winapi.VK_SHIFT),
		Ctrl:  t.native.ModifierPressed(winapi.VK_CONTROL),
		Alt:   t.native.ModifierPressed(winapi.VK_MENU),
	}
}

// modifierCombinations enumerates all eight modifier states.
func modifierCombinations() []Modifiers {
	combos := make([]Modifiers, 0, 8)
	for _, shift := range []bool{false, true} {
		for _, ctrl := range []bool{false, true} {
			for _, alt := range []bool{false, true} {
				combos = append(combos, Modifiers{Shift: shift, Ctrl: ctrl, Alt: alt})
			}
		}
	}
	return combos
}

// keyState renders a held modifier as a keyboard-state byte.
func keyState(held bool) byte {
	if held {
		return 0x80
	}
	return 0x00
}
