package layout_test

import (
	"testing"

	"github.com/frudas24/inputhook/internal/testutil"
	"github.com/frudas24/inputhook/internal/winapi"
	"github.com/frudas24/inputhook/layout"
)

// TestTranslate_PlainKey verifies a no-modifier key resolves to its
// lowercase character.
func TestTranslate_PlainKey(t *testing.T) {
	tr, err := layout.NewWithNative(testutil.NewFakeNative())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	info := tr.Translate(0x41, true)
	if !info.HasChar || info.Char != 'a' || info.IsDead {
		t.Fatalf("unexpected translation: %+v", info)
	}
	if info.VK != 0x41 || info.Scan != 0x1E {
		t.Fatalf("unexpected key identity: %+v", info)
	}
}

// TestTranslate_ShiftSampled verifies the live modifier state selects the
// shifted table.
func TestTranslate_ShiftSampled(t *testing.T) {
	native := testutil.NewFakeNative()
	tr, err := layout.NewWithNative(native)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	native.SetPressed(winapi.VK_SHIFT, true)
	info := tr.Translate(0x41, true)
	if !info.HasChar || info.Char != 'A' {
		t.Fatalf("expected shifted 'A', got %+v", info)
	}

	native.SetPressed(winapi.VK_SHIFT, false)
	info = tr.Translate(0x41, false)
	if !info.HasChar || info.Char != 'a' {
		t.Fatalf("expected plain 'a', got %+v", info)
	}
}

// TestCharFromScan_MatchesNoModifierEntry verifies char_from_scan equals the
// cached no-modifier entry for every populated scan code.
func TestCharFromScan_MatchesNoModifierEntry(t *testing.T) {
	native := testutil.NewFakeNative()
	native.VKForScan[0x12] = 0x45
	native.ScanForVK[0x45] = 0x12
	native.Plain[0x45] = 'e'
	native.Shifted[0x45] = 'E'

	tr, err := layout.NewWithNative(native)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for scan, want := range map[uint32]rune{0x1E: 'a', 0x12: 'e'} {
		ch, ok := tr.CharFromScan(scan)
		if !ok || ch != want {
			t.Fatalf("scan 0x%02X: expected %q, got %q ok=%v", scan, want, ch, ok)
		}
	}
	if _, ok := tr.CharFromScan(0x00); ok {
		t.Fatalf("unmapped scan must report no character")
	}
	if _, ok := tr.CharFromScan(0x1FF); ok {
		t.Fatalf("out-of-range scan must report no character")
	}
}

// TestBuild_DeadKeyFlushed verifies a dead key is recorded as dead and its
// residual state is flushed before the next key is translated.
func TestBuild_DeadKeyFlushed(t *testing.T) {
	native := testutil.NewFakeNative()
	// The dead key sits at a lower scan code than 'e', so without a flush
	// the residue would corrupt the 'e' entry.
	native.VKForScan[0x10] = 0xDE
	native.ScanForVK[0xDE] = 0x10
	native.Dead[0xDE] = true
	native.VKForScan[0x12] = 0x45
	native.ScanForVK[0x45] = 0x12
	native.Plain[0x45] = 'e'
	native.Shifted[0x45] = 'E'

	tr, err := layout.NewWithNative(native)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	info := tr.Translate(0xDE, true)
	if !info.IsDead {
		t.Fatalf("expected dead key, got %+v", info)
	}
	ch, ok := tr.CharFromScan(0x12)
	if !ok || ch != 'e' {
		t.Fatalf("dead-key residue leaked into next entry: got %q ok=%v", ch, ok)
	}

	// The corrective call targets VK_DECIMAL right after the dead key.
	calls := native.Calls()
	flushed := false
	for i := 1; i < len(calls); i++ {
		if calls[i-1].VK == 0xDE && calls[i].VK == winapi.VK_DECIMAL {
			flushed = true
			break
		}
	}
	if !flushed {
		t.Fatalf("expected a VK_DECIMAL flush after each dead-key translation")
	}
}

// TestUpdateLayout_ReplacesWholesale verifies a refresh swaps the entire
// cache so readers observe the new layout.
func TestUpdateLayout_ReplacesWholesale(t *testing.T) {
	native := testutil.NewFakeNative()
	tr, err := layout.NewWithNative(native)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if ch, ok := tr.CharFromScan(0x1E); !ok || ch != 'a' {
		t.Fatalf("expected 'a' before refresh, got %q ok=%v", ch, ok)
	}

	native.Plain[0x41] = 'q'
	if err := tr.UpdateLayout(); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if ch, ok := tr.CharFromScan(0x1E); !ok || ch != 'q' {
		t.Fatalf("expected 'q' after refresh, got %q ok=%v", ch, ok)
	}
}

// TestBuild_CoversAllModifierCombinations verifies the cache is built for
// all eight modifier states.
func TestBuild_CoversAllModifierCombinations(t *testing.T) {
	native := testutil.NewFakeNative()
	if _, err := layout.NewWithNative(native); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	seen := make(map[testutil.TranslateCall]bool)
	for _, call := range native.Calls() {
		seen[testutil.TranslateCall{Shift: call.Shift, Ctrl: call.Ctrl, Alt: call.Alt}] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 modifier combinations, got %d", len(seen))
	}
}
