// Package synth synthesizes keyboard and mouse input events equivalent to
// the ones the hook backend observes.
package synth

// Button identifies a mouse button for synthesized events.
type Button int

// The synthesizable mouse buttons.
const (
	Left Button = iota
	Right
	Middle
)

// Injector defines the input synthesis operations.
type Injector interface {
	KeyDown(vk uint16) error
	KeyUp(vk uint16) error
	KeyTap(vk uint16) error
	TypeUnicode(text string) error
	MoveAbs(x, y int) error
	MoveRel(dx, dy int) error
	ButtonDown(btn Button) error
	ButtonUp(btn Button) error
	Click(btn Button) error
	Wheel(delta int) error
	HWheel(delta int) error
}
