// Package tray puts a pause/quit menu in the system tray using
// getlantern/systray.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Item is one clickable menu entry. A nil Item in the menu is a separator.
type Item struct {
	Title    string
	Callback func()
	item     *systray.MenuItem
}

// Tray manages the system tray icon and menu.
type Tray struct {
	title    string
	tooltip  string
	items    []*Item
	quitCh   chan struct{}
	stopOnce sync.Once
	quitFn   func()
}

// New creates a tray with the given title and tooltip.
func New(title, tooltip string) *Tray {
	return &Tray{
		title:   title,
		tooltip: tooltip,
		quitCh:  make(chan struct{}),
		quitFn:  systray.Quit,
	}
}

// AddItem appends a menu entry and returns its handle.
func (t *Tray) AddItem(title string, callback func()) *Item {
	it := &Item{Title: title, Callback: callback}
	t.items = append(t.items, it)
	return it
}

// AddSeparator appends a separator.
func (t *Tray) AddSeparator() {
	t.items = append(t.items, nil)
}

// SetChecked updates the checkmark of a menu entry.
func (t *Tray) SetChecked(it *Item, checked bool) {
	if it == nil || it.item == nil {
		return
	}
	if checked {
		it.item.Check()
	} else {
		it.item.Uncheck()
	}
}

// Run starts the tray event loop. Blocks until Stop is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, func() {})
}

// Stop tears the tray down and unblocks Run. Idempotent: the Quit menu
// entry and a signal handler may both call it during shutdown.
func (t *Tray) Stop() {
	t.stopOnce.Do(func() {
		close(t.quitCh)
		t.quitFn()
	})
}

func (t *Tray) onReady() {
	systray.SetTitle(t.title)
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(icon())

	for _, it := range t.items {
		if it == nil {
			systray.AddSeparator()
			continue
		}
		it.item = systray.AddMenuItem(it.Title, "")
		if it.Callback == nil {
			continue
		}
		go func(it *Item) {
			for {
				select {
				case <-it.item.ClickedCh:
					it.Callback()
				case <-t.quitCh:
					return
				}
			}
		}(it)
	}
}

// icon returns a minimal valid 16x16 32-bit ICO. Pixels stay zero, which
// renders as a transparent placeholder.
func icon() []byte {
	ico := make([]byte, 1118)
	// ICONDIR + one ICONDIRENTRY.
	copy(ico[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	copy(ico[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00,
		0x16, 0x00, 0x00, 0x00,
	})
	// BITMAPINFOHEADER: 16x32 (image + mask), 32bpp.
	copy(ico[22:38], []byte{
		0x28, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x20, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x20, 0x00,
	})
	return ico
}
