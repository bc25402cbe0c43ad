package testutil

import "github.com/frudas24/inputhook/synth"

// Call records a single injected action.
type Call struct {
	Name  string
	VK    uint16
	X     int
	Y     int
	Delta int
	Text  string
}

// FakeInjector implements synth.Injector and records calls for tests.
type FakeInjector struct {
	Calls []Call
	// Err, when set, is returned by every operation.
	Err error
}

// Ensure FakeInjector implements the interface.
var _ synth.Injector = (*FakeInjector)(nil)

// KeyDown records a key press.
func (f *FakeInjector) KeyDown(vk uint16) error {
	f.Calls = append(f.Calls, Call{Name: "KeyDown", VK: vk})
	return f.Err
}

// KeyUp records a key release.
func (f *FakeInjector) KeyUp(vk uint16) error {
	f.Calls = append(f.Calls, Call{Name: "KeyUp", VK: vk})
	return f.Err
}

// KeyTap records a press and release.
func (f *FakeInjector) KeyTap(vk uint16) error {
	f.Calls = append(f.Calls, Call{Name: "KeyTap", VK: vk})
	return f.Err
}

// TypeUnicode records typed text.
func (f *FakeInjector) TypeUnicode(text string) error {
	f.Calls = append(f.Calls, Call{Name: "TypeUnicode", Text: text})
	return f.Err
}

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	f.Calls = append(f.Calls, Call{Name: "MoveAbs", X: x, Y: y})
	return f.Err
}

// MoveRel records a relative move.
func (f *FakeInjector) MoveRel(dx, dy int) error {
	f.Calls = append(f.Calls, Call{Name: "MoveRel", X: dx, Y: dy})
	return f.Err
}

// ButtonDown records a button press.
func (f *FakeInjector) ButtonDown(btn synth.Button) error {
	f.Calls = append(f.Calls, Call{Name: "ButtonDown", VK: uint16(btn)})
	return f.Err
}

// ButtonUp records a button release.
func (f *FakeInjector) ButtonUp(btn synth.Button) error {
	f.Calls = append(f.Calls, Call{Name: "ButtonUp", VK: uint16(btn)})
	return f.Err
}

// Click records a button click.
func (f *FakeInjector) Click(btn synth.Button) error {
	f.Calls = append(f.Calls, Call{Name: "Click", VK: uint16(btn)})
	return f.Err
}

// Wheel records a vertical wheel delta.
func (f *FakeInjector) Wheel(delta int) error {
	f.Calls = append(f.Calls, Call{Name: "Wheel", Delta: delta})
	return f.Err
}

// HWheel records a horizontal wheel delta.
func (f *FakeInjector) HWheel(delta int) error {
	f.Calls = append(f.Calls, Call{Name: "HWheel", Delta: delta})
	return f.Err
}
