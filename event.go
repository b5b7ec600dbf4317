package winhook

import "fmt"

// InputEvent is a single captured input event. Exactly one of the fields is
// non-nil, depending on which hook produced the event.
type InputEvent struct {
	Keyboard *KeyboardEvent `json:"keyboard,omitempty"`
	Mouse    *MouseEvent    `json:"mouse,omitempty"`
}

// KeyboardEvent describes one key transition seen by the keyboard hook.
type KeyboardEvent struct {
	// Press is the transition kind, including whether a system key combo
	// (e.g. Alt) was involved.
	Press KeyPress `json:"press"`

	// Key is nil when the OS-supplied virtual-key code is not recognized.
	Key *KeyCode `json:"key,omitempty"`

	// Injected is nil when the OS did not supply injection metadata.
	Injected *bool `json:"injected,omitempty"`
}

// KeyPress is the kind of key transition.
type KeyPress uint8

const (
	KeyDown KeyPress = iota
	KeyUp
	SysKeyDown
	SysKeyUp
)

// IsDown reports whether the key went down.
func (p KeyPress) IsDown() bool {
	return p == KeyDown || p == SysKeyDown
}

// IsSystem reports whether a system key combo was involved.
func (p KeyPress) IsSystem() bool {
	return p == SysKeyDown || p == SysKeyUp
}

func (p KeyPress) String() string {
	switch p {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case SysKeyDown:
		return "sys_key_down"
	case SysKeyUp:
		return "sys_key_up"
	}
	return fmt.Sprintf("key_press(%d)", uint8(p))
}

// MouseEvent describes one mouse event seen by the mouse hook. Exactly one of
// Press, Move and Wheel is non-nil.
type MouseEvent struct {
	Press *MousePressEvent `json:"press,omitempty"`
	Move  *MouseMoveEvent  `json:"move,omitempty"`
	Wheel *MouseWheelEvent `json:"wheel,omitempty"`

	// Injected is nil when the OS did not supply injection metadata.
	Injected *bool `json:"injected,omitempty"`
}

// MousePressEvent is a button transition.
type MousePressEvent struct {
	Down bool `json:"down"`

	// Button is nil when the OS-supplied button data is not recognized.
	Button *MouseButton `json:"button,omitempty"`
}

// MouseButton identifies which button changed and how.
type MouseButton struct {
	Kind  ButtonKind `json:"kind"`
	Click ClickKind  `json:"click"`
}

// ButtonKind enumerates the mouse buttons reported by the low-level hook.
type ButtonKind uint8

const (
	LeftButton ButtonKind = iota
	RightButton
	MiddleButton
	X1Button
	X2Button
)

func (b ButtonKind) String() string {
	switch b {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	case MiddleButton:
		return "middle"
	case X1Button:
		return "x1"
	case X2Button:
		return "x2"
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// ClickKind distinguishes single from double clicks.
type ClickKind uint8

const (
	SingleClick ClickKind = iota
	DoubleClick
)

func (c ClickKind) String() string {
	if c == DoubleClick {
		return "double"
	}
	return "single"
}

// MouseMoveEvent is a cursor movement.
type MouseMoveEvent struct {
	// Point is nil when the OS supplied no coordinate data.
	Point *Point `json:"point,omitempty"`
}

// Point is a screen coordinate.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// MouseWheelEvent is a wheel rotation.
type MouseWheelEvent struct {
	Axis WheelAxis `json:"axis"`

	// Rotation is nil when the wheel delta is absent or not recognized.
	Rotation *WheelRotation `json:"rotation,omitempty"`
}

// WheelAxis identifies which wheel rotated.
type WheelAxis uint8

const (
	VerticalWheel WheelAxis = iota
	HorizontalWheel
)

func (a WheelAxis) String() string {
	if a == HorizontalWheel {
		return "horizontal"
	}
	return "vertical"
}

// WheelRotation is the direction of a wheel rotation.
type WheelRotation uint8

const (
	// RotationForward is away from the user (or to the right for a
	// horizontal wheel).
	RotationForward WheelRotation = iota
	RotationBackward
)

func (r WheelRotation) String() string {
	if r == RotationBackward {
		return "backward"
	}
	return "forward"
}
