package winhook

// Hook kinds and window messages delivered to the low-level hook procedures.
const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105

	wmMousemove     = 0x0200
	wmLbuttondown   = 0x0201
	wmLbuttonup     = 0x0202
	wmLbuttondblclk = 0x0203
	wmRbuttondown   = 0x0204
	wmRbuttonup     = 0x0205
	wmRbuttondblclk = 0x0206
	wmMbuttondown   = 0x0207
	wmMbuttonup     = 0x0208
	wmMbuttondblclk = 0x0209
	wmMousewheel    = 0x020A
	wmXbuttondown   = 0x020B
	wmXbuttonup     = 0x020C
	wmXbuttondblclk = 0x020D
	wmMousehwheel   = 0x020E

	llkhfInjected = 0x00000010
	llmhfInjected = 0x00000001

	xbutton1 = 1
	xbutton2 = 2
)

// kbdllhookstruct mirrors the KBDLLHOOKSTRUCT record passed to WH_KEYBOARD_LL
// procedures.
type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

// msllhookstruct mirrors the MSLLHOOKSTRUCT record passed to WH_MOUSE_LL
// procedures.
type msllhookstruct struct {
	pt          Point
	mouseData   uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

// translateKeyboard converts one keyboard hook callback into an InputEvent.
// It is total over the recognized key messages: a nil record or an unknown
// virtual-key code degrades the affected field to nil, never to an error.
// The second result is false only when the window message itself is not a
// key transition, in which case the callback forwards it untouched.
func translateKeyboard(wParam uintptr, ks *kbdllhookstruct) (InputEvent, bool) {
	var press KeyPress
	switch wParam {
	case wmKeydown:
		press = KeyDown
	case wmKeyup:
		press = KeyUp
	case wmSyskeydown:
		press = SysKeyDown
	case wmSyskeyup:
		press = SysKeyUp
	default:
		return InputEvent{}, false
	}

	ev := &KeyboardEvent{Press: press}
	if ks != nil {
		if key, ok := keyFromVK(ks.vkCode); ok {
			ev.Key = &key
		}
		ev.Injected = boolPtr(ks.flags&llkhfInjected != 0)
	}

	return InputEvent{Keyboard: ev}, true
}

// translateMouse converts one mouse hook callback into an InputEvent, under
// the same degrade-only contract as translateKeyboard.
func translateMouse(wParam uintptr, ms *msllhookstruct) (InputEvent, bool) {
	ev := &MouseEvent{}
	if ms != nil {
		ev.Injected = boolPtr(ms.flags&llmhfInjected != 0)
	}

	switch wParam {
	case wmMousemove:
		move := &MouseMoveEvent{}
		if ms != nil {
			pt := ms.pt
			move.Point = &pt
		}
		ev.Move = move

	case wmLbuttondown, wmLbuttonup, wmLbuttondblclk:
		ev.Press = buttonPress(wParam != wmLbuttonup, LeftButton, wParam == wmLbuttondblclk)
	case wmRbuttondown, wmRbuttonup, wmRbuttondblclk:
		ev.Press = buttonPress(wParam != wmRbuttonup, RightButton, wParam == wmRbuttondblclk)
	case wmMbuttondown, wmMbuttonup, wmMbuttondblclk:
		ev.Press = buttonPress(wParam != wmMbuttonup, MiddleButton, wParam == wmMbuttondblclk)

	case wmXbuttondown, wmXbuttonup, wmXbuttondblclk:
		press := &MousePressEvent{Down: wParam != wmXbuttonup}
		if ms != nil {
			// The X button index lives in the high word of mouseData.
			switch ms.mouseData >> 16 {
			case xbutton1:
				press.Button = button(X1Button, wParam == wmXbuttondblclk)
			case xbutton2:
				press.Button = button(X2Button, wParam == wmXbuttondblclk)
			}
		}
		ev.Press = press

	case wmMousewheel, wmMousehwheel:
		wheel := &MouseWheelEvent{Axis: VerticalWheel}
		if wParam == wmMousehwheel {
			wheel.Axis = HorizontalWheel
		}
		if ms != nil {
			// The signed wheel delta lives in the high word of mouseData.
			// A zero delta carries no direction.
			switch delta := int16(ms.mouseData >> 16); {
			case delta > 0:
				rot := RotationForward
				wheel.Rotation = &rot
			case delta < 0:
				rot := RotationBackward
				wheel.Rotation = &rot
			}
		}
		ev.Wheel = wheel

	default:
		return InputEvent{}, false
	}

	return InputEvent{Mouse: ev}, true
}

func buttonPress(down bool, kind ButtonKind, double bool) *MousePressEvent {
	return &MousePressEvent{Down: down, Button: button(kind, double)}
}

func button(kind ButtonKind, double bool) *MouseButton {
	click := SingleClick
	if double {
		click = DoubleClick
	}
	return &MouseButton{Kind: kind, Click: click}
}

func boolPtr(b bool) *bool {
	return &b
}
