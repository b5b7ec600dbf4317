// Package winhook captures desktop-wide keyboard and mouse input on Windows,
// independent of window focus, by wrapping the low-level hook mechanism
// (WH_KEYBOARD_LL / WH_MOUSE_LL).
//
// Each hook kind runs on its own dedicated OS thread inside a blocking
// message loop. Captured events are translated into InputEvent values and
// delivered to the client through a non-blocking TryRecv. Closing the Hook
// unregisters every native hook and joins every background thread before
// returning. Capture is read-only: events are always passed on to the next
// hook in the chain, never blocked or altered.
package winhook

import (
	"errors"
	"fmt"
	"sync"
)

// HookKind identifies one native hook registration.
type HookKind int

const (
	KeyboardHookKind HookKind = iota
	MouseHookKind
)

func (k HookKind) String() string {
	switch k {
	case KeyboardHookKind:
		return "keyboard"
	case MouseHookKind:
		return "mouse"
	}
	return fmt.Sprintf("hook(%d)", int(k))
}

// HookError reports a failed native hook registration.
type HookError struct {
	Kind HookKind
	Err  error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook: %v", e.Kind, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// hookContext owns one native hook registration and the thread that keeps it
// alive. Implemented per platform; tests substitute fakes.
type hookContext interface {
	tryRecv() (InputEvent, error)
	stop()
	drain()
}

// Hook is the client-facing handle over one or two hook contexts. It is not
// safe for concurrent use without external synchronization; Close is the
// sole teardown path.
type Hook struct {
	contexts  []hookContext
	closeOnce sync.Once
}

// TryRecv returns the oldest pending event without blocking. Events from one
// hook kind arrive in capture order; no order is guaranteed across kinds.
// It returns ErrEmpty when nothing is pending yet, and ErrDisconnected only
// once every underlying hook has stopped and its events are consumed.
func (h *Hook) TryRecv() (InputEvent, error) {
	disconnected := 0
	for _, c := range h.contexts {
		ev, err := c.tryRecv()
		switch {
		case err == nil:
			return ev, nil
		case errors.Is(err, ErrDisconnected):
			disconnected++
		}
	}
	if len(h.contexts) > 0 && disconnected == len(h.contexts) {
		return InputEvent{}, ErrDisconnected
	}
	return InputEvent{}, ErrEmpty
}

// Close stops every owned hook context: each native hook is unregistered and
// its thread joined before Close returns. Events still buffered at that
// point are discarded. Close is idempotent.
func (h *Hook) Close() error {
	h.closeOnce.Do(func() {
		for _, c := range h.contexts {
			c.stop()
		}
		for _, c := range h.contexts {
			c.drain()
		}
	})
	return nil
}

// Builder selects which hook kinds a Hook will own.
type Builder struct {
	kinds []HookKind
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithKeyboard adds the keyboard hook.
func (b *Builder) WithKeyboard() *Builder {
	return b.with(KeyboardHookKind)
}

// WithMouse adds the mouse hook.
func (b *Builder) WithMouse() *Builder {
	return b.with(MouseHookKind)
}

func (b *Builder) with(kind HookKind) *Builder {
	for _, k := range b.kinds {
		if k == kind {
			return b
		}
	}
	b.kinds = append(b.kinds, kind)
	return b
}

// Build registers the selected hooks and returns the handle. If any
// registration fails, contexts started so far are fully torn down before the
// error is returned; the error identifies the hook kind that failed.
func (b *Builder) Build() (*Hook, error) {
	if len(b.kinds) == 0 {
		return nil, errors.New("no hook kind selected")
	}

	h := &Hook{}
	for _, kind := range b.kinds {
		c, err := newHookContext(kind)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.contexts = append(h.contexts, c)
	}
	return h, nil
}

// Keyboard returns a handle capturing keyboard events only.
func Keyboard() (*Hook, error) {
	return NewBuilder().WithKeyboard().Build()
}

// Mouse returns a handle capturing mouse events only.
func Mouse() (*Hook, error) {
	return NewBuilder().WithMouse().Build()
}

// New returns a handle capturing both keyboard and mouse events.
func New() (*Hook, error) {
	return NewBuilder().WithKeyboard().WithMouse().Build()
}
