//go:build !windows

package synth

import (
	"errors"

	"github.com/frudas24/inputhook/layout"
)

// ErrUnsupported indicates WinAPI input synthesis is not available.
var ErrUnsupported = errors.New("synth is only supported on Windows")

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// KeyFromChar returns ErrUnsupported.
func KeyFromChar(ch rune) (uint16, layout.Modifiers, error) {
	_ = ch
	return 0, layout.Modifiers{}, ErrUnsupported
}

// KeyDown returns ErrUnsupported.
func (n *NoopInjector) KeyDown(vk uint16) error {
	_ = vk
	return ErrUnsupported
}

// KeyUp returns ErrUnsupported.
func (n *NoopInjector) KeyUp(vk uint16) error {
	_ = vk
	return ErrUnsupported
}

// KeyTap returns ErrUnsupported.
func (n *NoopInjector) KeyTap(vk uint16) error {
	_ = vk
	return ErrUnsupported
}

// TypeUnicode returns ErrUnsupported.
func (n *NoopInjector) TypeUnicode(text string) error {
	_ = text
	return ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (n *NoopInjector) MoveAbs(x, y int) error {
	_ = x
	_ = y
	return ErrUnsupported
}

// MoveRel returns ErrUnsupported.
func (n *NoopInjector) MoveRel(dx, dy int) error {
	_ = dx
	_ = dy
	return ErrUnsupported
}

// ButtonDown returns ErrUnsupported.
func (n *NoopInjector) ButtonDown(btn Button) error {
	_ = btn
	return ErrUnsupported
}

// ButtonUp returns ErrUnsupported.
func (n *NoopInjector) ButtonUp(btn Button) error {
	_ = btn
	return ErrUnsupported
}

// Click returns ErrUnsupported.
func (n *NoopInjector) Click(btn Button) error {
	_ = btn
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	_ = delta
	return ErrUnsupported
}

// HWheel returns ErrUnsupported.
func (n *NoopInjector) HWheel(delta int) error {
	_ = delta
	return ErrUnsupported
}
