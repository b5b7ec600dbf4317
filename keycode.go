package winhook

import "fmt"

// KeyCode identifies a recognized key. Values mirror the Windows virtual-key
// codes, so a KeyCode can be compared against VK_* constants directly.
type KeyCode uint16

const (
	KeyBackspace   KeyCode = 0x08
	KeyTab         KeyCode = 0x09
	KeyEnter       KeyCode = 0x0D
	KeyShift       KeyCode = 0x10
	KeyCtrl        KeyCode = 0x11
	KeyAlt         KeyCode = 0x12
	KeyPause       KeyCode = 0x13
	KeyCapsLock    KeyCode = 0x14
	KeyEscape      KeyCode = 0x1B
	KeySpace       KeyCode = 0x20
	KeyPageUp      KeyCode = 0x21
	KeyPageDown    KeyCode = 0x22
	KeyEnd         KeyCode = 0x23
	KeyHome        KeyCode = 0x24
	KeyLeft        KeyCode = 0x25
	KeyUpArrow     KeyCode = 0x26
	KeyRight       KeyCode = 0x27
	KeyDownArrow   KeyCode = 0x28
	KeyPrintScreen KeyCode = 0x2C
	KeyInsert      KeyCode = 0x2D
	KeyDelete      KeyCode = 0x2E
	KeyLeftWin     KeyCode = 0x5B
	KeyRightWin    KeyCode = 0x5C
	KeyNumLock     KeyCode = 0x90
	KeyScrollLock  KeyCode = 0x91
	KeyLeftShift   KeyCode = 0xA0
	KeyRightShift  KeyCode = 0xA1
	KeyLeftCtrl    KeyCode = 0xA2
	KeyRightCtrl   KeyCode = 0xA3
	KeyLeftAlt     KeyCode = 0xA4
	KeyRightAlt    KeyCode = 0xA5

	// Letters and digits use their VK values directly: KeyA..KeyZ are
	// 0x41..0x5A, Key0..Key9 are 0x30..0x39.
	Key0 KeyCode = 0x30
	Key9 KeyCode = 0x39
	KeyA KeyCode = 0x41
	KeyZ KeyCode = 0x5A

	// Numpad digits are 0x60..0x69, function keys F1..F24 are 0x70..0x87.
	KeyNumpad0 KeyCode = 0x60
	KeyNumpad9 KeyCode = 0x69
	KeyF1      KeyCode = 0x70
	KeyF24     KeyCode = 0x87
)

// keyFromVK maps an OS-supplied virtual-key code to a recognized KeyCode.
// Unknown codes report false rather than producing a fabricated key.
func keyFromVK(vk uint32) (KeyCode, bool) {
	switch {
	case vk >= uint32(Key0) && vk <= uint32(Key9),
		vk >= uint32(KeyA) && vk <= uint32(KeyZ),
		vk >= uint32(KeyNumpad0) && vk <= uint32(KeyNumpad9),
		vk >= uint32(KeyF1) && vk <= uint32(KeyF24):
		return KeyCode(vk), true
	}

	switch KeyCode(vk) {
	case KeyBackspace, KeyTab, KeyEnter, KeyShift, KeyCtrl, KeyAlt,
		KeyPause, KeyCapsLock, KeyEscape, KeySpace,
		KeyPageUp, KeyPageDown, KeyEnd, KeyHome,
		KeyLeft, KeyUpArrow, KeyRight, KeyDownArrow,
		KeyPrintScreen, KeyInsert, KeyDelete,
		KeyLeftWin, KeyRightWin, KeyNumLock, KeyScrollLock,
		KeyLeftShift, KeyRightShift, KeyLeftCtrl, KeyRightCtrl,
		KeyLeftAlt, KeyRightAlt:
		return KeyCode(vk), true
	}

	return 0, false
}

func (k KeyCode) String() string {
	switch {
	case k >= Key0 && k <= Key9, k >= KeyA && k <= KeyZ:
		return string(rune(k))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return fmt.Sprintf("NUMPAD%d", k-KeyNumpad0)
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}

	switch k {
	case KeyBackspace:
		return "BACKSPACE"
	case KeyTab:
		return "TAB"
	case KeyEnter:
		return "ENTER"
	case KeyShift:
		return "SHIFT"
	case KeyCtrl:
		return "CTRL"
	case KeyAlt:
		return "ALT"
	case KeyPause:
		return "PAUSE"
	case KeyCapsLock:
		return "CAPSLOCK"
	case KeyEscape:
		return "ESC"
	case KeySpace:
		return "SPACE"
	case KeyPageUp:
		return "PAGEUP"
	case KeyPageDown:
		return "PAGEDOWN"
	case KeyEnd:
		return "END"
	case KeyHome:
		return "HOME"
	case KeyLeft:
		return "LEFT"
	case KeyUpArrow:
		return "UP"
	case KeyRight:
		return "RIGHT"
	case KeyDownArrow:
		return "DOWN"
	case KeyPrintScreen:
		return "PRINTSCREEN"
	case KeyInsert:
		return "INSERT"
	case KeyDelete:
		return "DELETE"
	case KeyLeftWin:
		return "LWIN"
	case KeyRightWin:
		return "RWIN"
	case KeyNumLock:
		return "NUMLOCK"
	case KeyScrollLock:
		return "SCROLLLOCK"
	case KeyLeftShift:
		return "LSHIFT"
	case KeyRightShift:
		return "RSHIFT"
	case KeyLeftCtrl:
		return "LCTRL"
	case KeyRightCtrl:
		return "RCTRL"
	case KeyLeftAlt:
		return "LALT"
	case KeyRightAlt:
		return "RALT"
	}

	return fmt.Sprintf("VK(0x%02X)", uint16(k))
}
