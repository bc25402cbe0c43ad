//go:build windows

package synth

import "github.com/lxn/win"

// MoveAbs moves the cursor to an absolute screen coordinate.
func (w *WinInjector) MoveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy, 0); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return err
	}
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// MoveRel moves the cursor by a relative delta.
func (w *WinInjector) MoveRel(dx, dy int) error {
	return sendMouseInput(win.MOUSEEVENTF_MOVE, int32(dx), int32(dy), 0)
}

// ButtonDown presses a mouse button.
func (w *WinInjector) ButtonDown(btn Button) error {
	return sendMouseInput(buttonFlags(btn, true), 0, 0, 0)
}

// ButtonUp releases a mouse button.
func (w *WinInjector) ButtonUp(btn Button) error {
	return sendMouseInput(buttonFlags(btn, false), 0, 0, 0)
}

// Click presses and releases a mouse button at the current position.
func (w *WinInjector) Click(btn Button) error {
	if err := w.ButtonDown(btn); err != nil {
		return err
	}
	return w.ButtonUp(btn)
}

// Wheel scrolls vertically by the provided delta.
func (w *WinInjector) Wheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(delta))
}

// HWheel scrolls horizontally by the provided delta.
func (w *WinInjector) HWheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_HWHEEL, 0, 0, uint32(delta))
}

// buttonFlags maps a button and direction to mouse event flags.
func buttonFlags(btn Button, down bool) uint32 {
	switch btn {
	case Right:
		if down {
			return win.MOUSEEVENTF_RIGHTDOWN
		}
		return win.MOUSEEVENTF_RIGHTUP
	case Middle:
		if down {
			return win.MOUSEEVENTF_MIDDLEDOWN
		}
		return win.MOUSEEVENTF_MIDDLEUP
	default:
		if down {
			return win.MOUSEEVENTF_LEFTDOWN
		}
		return win.MOUSEEVENTF_LEFTUP
	}
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
