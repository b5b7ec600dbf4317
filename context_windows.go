//go:build windows

package winhook

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPeekMessage         = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
)

const (
	wmQuit     = 0x0012
	wmUser     = 0x0400
	pmNoremove = 0x0000
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// The OS invokes a process-wide callback address per hook kind, so the
// callbacks reach their event queues through this registry. An entry exists
// only while the owning context is running; at most one context per kind.
var sinks struct {
	mu       sync.Mutex
	byKind   map[HookKind]*eventQueue
	kbProc   uintptr
	mouProc  uintptr
	procOnce sync.Once
}

func claimSink(kind HookKind, q *eventQueue) error {
	sinks.mu.Lock()
	defer sinks.mu.Unlock()
	if sinks.byKind == nil {
		sinks.byKind = make(map[HookKind]*eventQueue)
	}
	if _, ok := sinks.byKind[kind]; ok {
		return fmt.Errorf("%s hook already active in this process", kind)
	}
	sinks.byKind[kind] = q
	return nil
}

func releaseSink(kind HookKind) {
	sinks.mu.Lock()
	defer sinks.mu.Unlock()
	delete(sinks.byKind, kind)
}

func sinkFor(kind HookKind) *eventQueue {
	sinks.mu.Lock()
	defer sinks.mu.Unlock()
	return sinks.byKind[kind]
}

// hookProcs returns the native callback addresses, created once per process
// (NewCallback allocations are never released).
func hookProcs() (keyboard, mouse uintptr) {
	sinks.procOnce.Do(func() {
		sinks.kbProc = windows.NewCallback(keyboardProc)
		sinks.mouProc = windows.NewCallback(mouseProc)
	})
	return sinks.kbProc, sinks.mouProc
}

func keyboardProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		forwardKeyboard(wParam, lParam)
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

func mouseProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		forwardMouse(wParam, lParam)
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// forwardKeyboard translates and queues one callback payload. A panic must
// never unwind into the OS-owned hook frame, so any failure here is absorbed
// and the event dropped.
func forwardKeyboard(wParam, lParam uintptr) {
	defer func() { _ = recover() }()

	q := sinkFor(KeyboardHookKind)
	if q == nil {
		return
	}
	if ev, ok := translateKeyboard(wParam, (*kbdllhookstruct)(unsafe.Pointer(lParam))); ok {
		q.push(ev)
	}
}

func forwardMouse(wParam, lParam uintptr) {
	defer func() { _ = recover() }()

	q := sinkFor(MouseHookKind)
	if q == nil {
		return
	}
	if ev, ok := translateMouse(wParam, (*msllhookstruct)(unsafe.Pointer(lParam))); ok {
		q.push(ev)
	}
}

// llHookContext owns one low-level hook registration and the OS thread that
// runs its message loop.
type llHookContext struct {
	kind     HookKind
	queue    *eventQueue
	threadID uint32
	done     chan struct{}
	stopOnce sync.Once
}

// newHookContext registers the hook on a freshly pinned thread. It returns
// only after the registration outcome is known; on failure the thread has
// already exited and nothing is leaked.
func newHookContext(kind HookKind) (hookContext, error) {
	q := &eventQueue{}
	if err := claimSink(kind, q); err != nil {
		return nil, &HookError{Kind: kind, Err: err}
	}

	c := &llHookContext{kind: kind, queue: q, done: make(chan struct{})}
	errCh := make(chan error, 1)
	go c.run(errCh)

	if err := <-errCh; err != nil {
		return nil, &HookError{Kind: kind, Err: err}
	}
	return c, nil
}

func (c *llHookContext) run(errCh chan<- error) {
	// Hooks must be registered, serviced and unregistered on one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer close(c.done)
	defer c.queue.close()
	defer releaseSink(c.kind)

	kbProc, mouProc := hookProcs()
	hookID, proc := uintptr(whKeyboardLL), kbProc
	if c.kind == MouseHookKind {
		hookID, proc = uintptr(whMouseLL), mouProc
	}

	hook, _, err := procSetWindowsHookEx.Call(hookID, proc, 0, 0)
	if hook == 0 {
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}

	// Force creation of this thread's message queue so a stop request posted
	// via PostThreadMessage cannot be lost.
	var m msg
	procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), ^uintptr(0), wmUser, wmUser, pmNoremove)

	c.threadID = windows.GetCurrentThreadId()
	errCh <- nil

	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}

	// Best effort: a failed unhook is reported but must not stall teardown.
	if ret, _, err := procUnhookWindowsHookEx.Call(hook); ret == 0 {
		log.Printf("winhook: failed to unhook %s hook: %v", c.kind, err)
	}
}

// stop posts a quit message to the hook thread's queue and joins the thread.
// Idempotent.
func (c *llHookContext) stop() {
	c.stopOnce.Do(func() {
		procPostThreadMessage.Call(uintptr(c.threadID), wmQuit, 0, 0)
		<-c.done
	})
}

func (c *llHookContext) tryRecv() (InputEvent, error) {
	return c.queue.tryRecv()
}

func (c *llHookContext) drain() {
	c.queue.drain()
}
