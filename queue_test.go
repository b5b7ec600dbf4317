package winhook

import (
	"errors"
	"testing"
)

func keyEvent(key KeyCode) InputEvent {
	k := key
	return InputEvent{Keyboard: &KeyboardEvent{Press: KeyDown, Key: &k}}
}

// TestQueueFIFO tests that events come back in push order
func TestQueueFIFO(t *testing.T) {
	q := &eventQueue{}
	keys := []KeyCode{KeyA, KeyZ, KeySpace}
	for _, k := range keys {
		q.push(keyEvent(k))
	}

	for i, want := range keys {
		ev, err := q.tryRecv()
		if err != nil {
			t.Fatalf("Event %d: unexpected error %v", i, err)
		}
		if ev.Keyboard == nil || ev.Keyboard.Key == nil || *ev.Keyboard.Key != want {
			t.Errorf("Event %d: expected key %v, got %+v", i, want, ev.Keyboard)
		}
	}
}

// TestQueueEmptyWhileOpen tests that an idle open queue reports empty, not
// disconnected
func TestQueueEmptyWhileOpen(t *testing.T) {
	q := &eventQueue{}
	if _, err := q.tryRecv(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}

// TestQueueDisconnectedAfterDrain tests that a closed queue delivers pending
// events first and only then reports disconnected
func TestQueueDisconnectedAfterDrain(t *testing.T) {
	q := &eventQueue{}
	q.push(keyEvent(KeyA))
	q.close()

	if _, err := q.tryRecv(); err != nil {
		t.Fatalf("Pending event should survive close, got %v", err)
	}
	if _, err := q.tryRecv(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Expected ErrDisconnected once drained, got %v", err)
	}
}

// TestQueuePushAfterClose tests that late events are dropped
func TestQueuePushAfterClose(t *testing.T) {
	q := &eventQueue{}
	q.close()
	q.push(keyEvent(KeyA))

	if _, err := q.tryRecv(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Expected ErrDisconnected, got %v", err)
	}
}

// TestQueueDrainDiscards tests that drain removes buffered events
func TestQueueDrainDiscards(t *testing.T) {
	q := &eventQueue{}
	q.push(keyEvent(KeyA))
	q.push(keyEvent(KeyZ))
	q.close()
	q.drain()

	if _, err := q.tryRecv(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Expected ErrDisconnected after drain, got %v", err)
	}
}
