package winapi

// POINT is the Win32 POINT structure.
type POINT struct {
	X int32
	Y int32
}

// MSG is the Win32 MSG structure drained by GetMessageW.
type MSG struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// KBDLLHOOKSTRUCT is the payload behind a WH_KEYBOARD_LL callback.
type KBDLLHOOKSTRUCT struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// MSLLHOOKSTRUCT is the payload behind a WH_MOUSE_LL callback.
type MSLLHOOKSTRUCT struct {
	Pt          POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}
