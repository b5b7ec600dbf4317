// Package recorder persists captured input events to a local SQLite log.
package recorder

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"winhook"
)

// Recorder writes input events to a SQLite database.
type Recorder struct {
	conn *sql.DB
}

// Open opens (or creates) the event log at path and initializes the schema.
func Open(path string) (*Recorder, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}

	// WAL mode keeps the single writer from blocking readers.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	r := &Recorder{conn: conn}
	if err := r.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return r, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.conn.Close()
}

func (r *Recorder) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS input_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,

		device TEXT NOT NULL,   -- "keyboard" or "mouse"
		action TEXT NOT NULL,   -- press kind, "move" or "wheel"

		-- Keyboard
		key TEXT,

		-- Mouse press
		button TEXT,
		click TEXT,
		down BOOLEAN,

		-- Mouse move
		x INTEGER,
		y INTEGER,

		-- Mouse wheel
		wheel_axis TEXT,
		wheel_rotation TEXT,

		injected BOOLEAN
	);

	CREATE INDEX IF NOT EXISTS idx_input_events_timestamp ON input_events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_input_events_device ON input_events(device);
	`

	_, err := r.conn.Exec(schema)
	return err
}

// Record inserts one event. Absent optional fields are stored as NULL.
func (r *Recorder) Record(ev winhook.InputEvent) error {
	var (
		device, action string
		key            sql.NullString
		button, click  sql.NullString
		down           sql.NullBool
		x, y           sql.NullInt64
		axis, rotation sql.NullString
		injected       sql.NullBool
	)

	switch {
	case ev.Keyboard != nil:
		device = "keyboard"
		action = ev.Keyboard.Press.String()
		if ev.Keyboard.Key != nil {
			key = sql.NullString{String: ev.Keyboard.Key.String(), Valid: true}
		}
		if ev.Keyboard.Injected != nil {
			injected = sql.NullBool{Bool: *ev.Keyboard.Injected, Valid: true}
		}

	case ev.Mouse != nil:
		device = "mouse"
		if ev.Mouse.Injected != nil {
			injected = sql.NullBool{Bool: *ev.Mouse.Injected, Valid: true}
		}
		switch {
		case ev.Mouse.Press != nil:
			action = "press"
			down = sql.NullBool{Bool: ev.Mouse.Press.Down, Valid: true}
			if b := ev.Mouse.Press.Button; b != nil {
				button = sql.NullString{String: b.Kind.String(), Valid: true}
				click = sql.NullString{String: b.Click.String(), Valid: true}
			}
		case ev.Mouse.Move != nil:
			action = "move"
			if pt := ev.Mouse.Move.Point; pt != nil {
				x = sql.NullInt64{Int64: int64(pt.X), Valid: true}
				y = sql.NullInt64{Int64: int64(pt.Y), Valid: true}
			}
		case ev.Mouse.Wheel != nil:
			action = "wheel"
			axis = sql.NullString{String: ev.Mouse.Wheel.Axis.String(), Valid: true}
			if rot := ev.Mouse.Wheel.Rotation; rot != nil {
				rotation = sql.NullString{String: rot.String(), Valid: true}
			}
		default:
			return fmt.Errorf("mouse event carries no press, move or wheel")
		}

	default:
		return fmt.Errorf("event carries neither keyboard nor mouse data")
	}

	query := `
		INSERT INTO input_events (
			device, action, key, button, click, down, x, y,
			wheel_axis, wheel_rotation, injected
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if _, err := r.conn.Exec(query,
		device, action, key, button, click, down, x, y,
		axis, rotation, injected,
	); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// RecordedEvent is one row of the event log.
type RecordedEvent struct {
	ID       int64
	Device   string
	Action   string
	Key      string
	Button   string
	Click    string
	Down     sql.NullBool
	X, Y     sql.NullInt64
	Axis     string
	Rotation string
	Injected sql.NullBool
}

// Recent returns up to limit most recent events, newest first.
func (r *Recorder) Recent(limit int) ([]RecordedEvent, error) {
	query := `
		SELECT id, device, action, key, button, click, down, x, y,
		       wheel_axis, wheel_rotation, injected
		FROM input_events
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []RecordedEvent
	for rows.Next() {
		var (
			e                                  RecordedEvent
			key, button, click, axis, rotation sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.Device, &e.Action, &key, &button, &click,
			&e.Down, &e.X, &e.Y, &axis, &rotation, &e.Injected,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Key = key.String
		e.Button = button.String
		e.Click = click.String
		e.Axis = axis.String
		e.Rotation = rotation.String
		events = append(events, e)
	}

	return events, rows.Err()
}

// Count returns the total number of recorded events.
func (r *Recorder) Count() (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM input_events").Scan(&count)
	return count, err
}
