package recorder

import (
	"path/filepath"
	"testing"

	"winhook"
)

func openTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

// TestRecordKeyboardEvent tests a fully populated keyboard row
func TestRecordKeyboardEvent(t *testing.T) {
	r := openTestRecorder(t)

	key := winhook.KeyA
	injected := false
	ev := winhook.InputEvent{Keyboard: &winhook.KeyboardEvent{
		Press:    winhook.KeyDown,
		Key:      &key,
		Injected: &injected,
	}}
	if err := r.Record(ev); err != nil {
		t.Fatalf("Record: %v", err)
	}

	events, err := r.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.Device != "keyboard" || e.Action != "key_down" || e.Key != "A" {
		t.Errorf("Unexpected row: %+v", e)
	}
	if !e.Injected.Valid || e.Injected.Bool {
		t.Errorf("Expected injected=false, got %+v", e.Injected)
	}
}

// TestRecordDegradedWheelEvent tests that absent optional fields land as NULL
func TestRecordDegradedWheelEvent(t *testing.T) {
	r := openTestRecorder(t)

	// A wheel event whose delta could not be interpreted carries no rotation.
	ev := winhook.InputEvent{Mouse: &winhook.MouseEvent{
		Wheel: &winhook.MouseWheelEvent{Axis: winhook.VerticalWheel},
	}}
	if err := r.Record(ev); err != nil {
		t.Fatalf("Record: %v", err)
	}

	events, err := r.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.Device != "mouse" || e.Action != "wheel" || e.Axis != "vertical" {
		t.Errorf("Unexpected row: %+v", e)
	}
	if e.Rotation != "" {
		t.Errorf("Expected NULL rotation, got %q", e.Rotation)
	}
	if e.Injected.Valid {
		t.Errorf("Expected NULL injected, got %+v", e.Injected)
	}
}

// TestRecentOrderAndCount tests newest-first ordering and the total count
func TestRecentOrderAndCount(t *testing.T) {
	r := openTestRecorder(t)

	pts := []winhook.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	for i := range pts {
		ev := winhook.InputEvent{Mouse: &winhook.MouseEvent{
			Move: &winhook.MouseMoveEvent{Point: &pts[i]},
		}}
		if err := r.Record(ev); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	count, err := r.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}

	events, err := r.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].X.Int64 != 3 || events[1].X.Int64 != 2 {
		t.Errorf("Expected newest first, got x=%d then x=%d",
			events[0].X.Int64, events[1].X.Int64)
	}
}

// TestRecordRejectsEmptyEvent tests that a hollow event is not inserted
func TestRecordRejectsEmptyEvent(t *testing.T) {
	r := openTestRecorder(t)

	if err := r.Record(winhook.InputEvent{}); err == nil {
		t.Error("Expected an error for an empty event")
	}
	if err := r.Record(winhook.InputEvent{Mouse: &winhook.MouseEvent{}}); err == nil {
		t.Error("Expected an error for a hollow mouse event")
	}

	count, err := r.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no rows, got %d", count)
	}
}
