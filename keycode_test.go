package winhook

import "testing"

// TestKeyFromVKRecognized tests the recognized ranges and named keys
func TestKeyFromVKRecognized(t *testing.T) {
	tests := []struct {
		vk   uint32
		want KeyCode
	}{
		{0x41, KeyA},
		{0x5A, KeyZ},
		{0x30, Key0},
		{0x39, Key9},
		{0x60, KeyNumpad0},
		{0x70, KeyF1},
		{0x87, KeyF24},
		{0x1B, KeyEscape},
		{0x20, KeySpace},
		{0xA4, KeyLeftAlt},
	}

	for _, tt := range tests {
		got, ok := keyFromVK(tt.vk)
		if !ok {
			t.Errorf("VK 0x%02X: expected recognition", tt.vk)
			continue
		}
		if got != tt.want {
			t.Errorf("VK 0x%02X: expected %v, got %v", tt.vk, tt.want, got)
		}
	}
}

// TestKeyFromVKUnknown tests that unassigned codes are rejected
func TestKeyFromVKUnknown(t *testing.T) {
	for _, vk := range []uint32{0x00, 0x07, 0xE8, 0xFF, 0x1234} {
		if _, ok := keyFromVK(vk); ok {
			t.Errorf("VK 0x%02X: expected rejection", vk)
		}
	}
}

// TestKeyCodeString tests a sample of the display names
func TestKeyCodeString(t *testing.T) {
	tests := []struct {
		key  KeyCode
		want string
	}{
		{KeyA, "A"},
		{Key9, "9"},
		{KeyNumpad0, "NUMPAD0"},
		{KeyCode(0x7B), "F12"},
		{KeyEscape, "ESC"},
		{KeyLeftShift, "LSHIFT"},
		{KeyCode(0xE8), "VK(0xE8)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("KeyCode 0x%02X: expected %q, got %q", uint16(tt.key), tt.want, got)
		}
	}
}
