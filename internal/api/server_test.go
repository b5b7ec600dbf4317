package api

import (
	"testing"
	"time"

	"winhook"
)

// TestStopBeforeStart tests that shutdown racing ahead of startup neither
// races nor blocks: the server is fully formed at construction time
func TestStopBeforeStart(t *testing.T) {
	s := NewServer("test")
	s.Stop()

	done := make(chan error, 1)
	go func() { done <- s.Start("127.0.0.1:0") }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected a clean return from Start, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

// TestStopIdempotent tests that Stop can be called twice
func TestStopIdempotent(t *testing.T) {
	s := NewServer("test")
	s.Stop()
	s.Stop()
}

// TestBroadcastInputAfterStop tests that late events never block the caller
func TestBroadcastInputAfterStop(t *testing.T) {
	s := NewServer("test")
	s.Stop()

	key := winhook.KeyA
	ev := winhook.InputEvent{Keyboard: &winhook.KeyboardEvent{
		Press: winhook.KeyDown,
		Key:   &key,
	}}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.BroadcastInput(ev)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastInput blocked after Stop")
	}
}
