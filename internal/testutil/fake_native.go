package testutil

import (
	"sync"

	"github.com/frudas24/inputhook/internal/winapi"
)

// TranslateCall records one layout translation request.
type TranslateCall struct {
	VK    uint32
	Scan  uint32
	Shift bool
	Ctrl  bool
	Alt   bool
}

// FakeNative implements layout.Native with a scripted keyboard layout. It
// models the real facility's statefulness: translating a dead key leaves
// residue that corrupts the next translation unless a corrective call is
// issued first.
type FakeNative struct {
	// HKL is the layout handle to report.
	HKL uintptr
	// VKForScan maps scan codes to virtual keys.
	VKForScan map[uint32]uint32
	// ScanForVK maps virtual keys to scan codes.
	ScanForVK map[uint32]uint32
	// Plain and Shifted map virtual keys to characters.
	Plain   map[uint32]rune
	Shifted map[uint32]rune
	// Dead marks virtual keys as dead keys.
	Dead map[uint32]bool
	// Pressed holds the modifiers reported by ModifierPressed.
	Pressed map[int32]bool
	// Corrupted is returned when a translation consumes dead-key residue.
	Corrupted rune

	mu      sync.Mutex
	pending bool
	calls   []TranslateCall
}

// NewFakeNative returns a fake layout with US-style defaults for the keys
// the tests use: scan 0x1E is 'A' (vk 0x41) producing 'a'/'A'.
func NewFakeNative() *FakeNative {
	return &FakeNative{
		HKL:       1,
		VKForScan: map[uint32]uint32{0x1E: 0x41},
		ScanForVK: map[uint32]uint32{0x41: 0x1E},
		Plain:     map[uint32]rune{0x41: 'a'},
		Shifted:   map[uint32]rune{0x41: 'A'},
		Dead:      map[uint32]bool{},
		Pressed:   map[int32]bool{},
		Corrupted: '!',
	}
}

// ActiveLayout reports the scripted layout handle.
func (f *FakeNative) ActiveLayout() (uintptr, error) {
	return f.HKL, nil
}

// ToVirtualKey maps a scan code through the scripted layout.
func (f *FakeNative) ToVirtualKey(scan uint32, hkl uintptr) uint32 {
	_ = hkl
	return f.VKForScan[scan]
}

// ToScanCode maps a virtual key through the scripted layout.
func (f *FakeNative) ToScanCode(vk uint32, hkl uintptr) uint32 {
	_ = hkl
	return f.ScanForVK[vk]
}

// Translate resolves a key under the given state, recording the call and
// simulating dead-key residue.
func (f *FakeNative) Translate(vk, scan uint32, state *[256]byte, hkl uintptr) (rune, int) {
	_ = hkl
	f.mu.Lock()
	defer f.mu.Unlock()

	shift := state[winapi.VK_SHIFT] != 0
	f.calls = append(f.calls, TranslateCall{
		VK:    vk,
		Scan:  scan,
		Shift: shift,
		Ctrl:  state[winapi.VK_CONTROL] != 0,
		Alt:   state[winapi.VK_MENU] != 0,
	})

	wasPending := f.pending
	f.pending = false

	if f.Dead[vk] {
		f.pending = true
		return '´', -1
	}

	var ch rune
	if shift {
		ch = f.Shifted[vk]
	} else {
		ch = f.Plain[vk]
	}
	if ch == 0 {
		return 0, 0
	}
	if wasPending {
		return f.Corrupted, 1
	}
	return ch, 1
}

// ModifierPressed reports the scripted modifier state.
func (f *FakeNative) ModifierPressed(vk int32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Pressed[vk]
}

// SetPressed scripts the live state of one modifier.
func (f *FakeNative) SetPressed(vk int32, held bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pressed[vk] = held
}

// Calls returns the recorded translation requests.
func (f *FakeNative) Calls() []TranslateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TranslateCall(nil), f.calls...)
}
