// winhook monitor - desktop-wide keyboard and mouse event monitor.
// Captures global input through low-level hooks and optionally records it
// to SQLite and/or broadcasts it over WebSocket.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"winhook"
	"winhook/internal/api"
	"winhook/internal/config"
	"winhook/internal/recorder"
	"winhook/internal/tray"
)

var (
	version = "0.1.0"
	cfgPath = flag.String("config", "", "Path to the config file")
	showVer = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("winhook monitor version %s\n", version)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	runMonitor(cfg)
}

func runMonitor(cfg *config.Config) {
	log.Println("winhook monitor starting...")

	builder := winhook.NewBuilder()
	if cfg.Capture.Keyboard {
		builder.WithKeyboard()
	}
	if cfg.Capture.Mouse {
		builder.WithMouse()
	}

	hook, err := builder.Build()
	if err != nil {
		log.Fatalf("Failed to install hooks: %v", err)
	}
	log.Printf("Hooks installed (keyboard=%v, mouse=%v)", cfg.Capture.Keyboard, cfg.Capture.Mouse)

	var rec *recorder.Recorder
	if cfg.Recorder.Enabled {
		path, err := recorderPath(cfg)
		if err != nil {
			log.Fatalf("Failed to resolve recorder path: %v", err)
		}
		if rec, err = recorder.Open(path); err != nil {
			log.Fatalf("Failed to open event log: %v", err)
		}
		defer rec.Close()
		log.Printf("Recording events to %s", path)
	}

	var server *api.Server
	if cfg.Server.Enabled {
		server = api.NewServer(version)
		go func() {
			if err := server.Start(cfg.Server.ListenAddr); err != nil {
				log.Printf("Broadcast server error: %v", err)
			}
		}()
	}

	var paused atomic.Bool
	pollDone := make(chan struct{})
	go pollEvents(hook, cfg, rec, server, &paused, pollDone)

	shutdown := func() {
		log.Println("Shutting down...")
		hook.Close()
		<-pollDone
		if server != nil {
			server.Stop()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if cfg.Tray.Enabled {
		t := tray.New("winhook", "winhook input monitor")

		var pauseItem *tray.Item
		pauseItem = t.AddItem("Pause capture", func() {
			now := !paused.Load()
			paused.Store(now)
			t.SetChecked(pauseItem, now)
			log.Printf("Capture paused: %v", now)
		})
		t.AddSeparator()
		t.AddItem("Quit", func() {
			t.Stop()
		})

		go func() {
			<-sigCh
			t.Stop()
		}()

		log.Println("winhook monitor running (tray). Press Ctrl+C to stop.")
		t.Run()
	} else {
		log.Println("winhook monitor running. Press Ctrl+C to stop.")
		<-sigCh
	}

	shutdown()
}

// pollEvents drains the hook until it disconnects. Events received while
// paused are consumed and discarded so the queues do not grow unbounded.
func pollEvents(hook *winhook.Hook, cfg *config.Config, rec *recorder.Recorder, server *api.Server, paused *atomic.Bool, done chan<- struct{}) {
	defer close(done)

	interval := time.Duration(cfg.Capture.PollIntervalMs) * time.Millisecond
	count := 0

	for {
		ev, err := hook.TryRecv()
		switch err {
		case nil:
			count++
			if paused.Load() {
				continue
			}
			handleEvent(ev, rec, server)

		case winhook.ErrEmpty:
			time.Sleep(interval)

		case winhook.ErrDisconnected:
			log.Printf("Hooks disconnected after %d events", count)
			return
		}
	}
}

func handleEvent(ev winhook.InputEvent, rec *recorder.Recorder, server *api.Server) {
	log.Printf("Event: %s", describe(ev))

	if rec != nil {
		if err := rec.Record(ev); err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}
	if server != nil {
		server.BroadcastInput(ev)
	}
}

// describe renders one event as a short log line.
func describe(ev winhook.InputEvent) string {
	switch {
	case ev.Keyboard != nil:
		k := ev.Keyboard
		key := "?"
		if k.Key != nil {
			key = k.Key.String()
		}
		return fmt.Sprintf("%s key=%s injected=%s", k.Press, key, optBool(k.Injected))

	case ev.Mouse != nil:
		m := ev.Mouse
		switch {
		case m.Press != nil:
			btn := "?"
			if m.Press.Button != nil {
				btn = fmt.Sprintf("%s(%s)", m.Press.Button.Kind, m.Press.Button.Click)
			}
			return fmt.Sprintf("mouse_press down=%v button=%s injected=%s", m.Press.Down, btn, optBool(m.Injected))
		case m.Move != nil:
			if pt := m.Move.Point; pt != nil {
				return fmt.Sprintf("mouse_move (%d,%d) injected=%s", pt.X, pt.Y, optBool(m.Injected))
			}
			return fmt.Sprintf("mouse_move (?) injected=%s", optBool(m.Injected))
		case m.Wheel != nil:
			rot := "?"
			if m.Wheel.Rotation != nil {
				rot = m.Wheel.Rotation.String()
			}
			return fmt.Sprintf("mouse_wheel axis=%s rotation=%s injected=%s", m.Wheel.Axis, rot, optBool(m.Injected))
		}
	}
	return "unknown event"
}

func optBool(b *bool) string {
	if b == nil {
		return "?"
	}
	return fmt.Sprintf("%v", *b)
}

func recorderPath(cfg *config.Config) (string, error) {
	if cfg.Recorder.Path != "" {
		return cfg.Recorder.Path, nil
	}
	base, err := config.DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(base), "events.db"), nil
}
