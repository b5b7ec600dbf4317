// Package protocol defines the WebSocket message envelope used by the
// broadcast server.
package protocol

import "winhook"

// MessageType defines the type of WebSocket message.
type MessageType string

const (
	// TypeHello is sent by the server immediately after a client connects.
	TypeHello MessageType = "hello"

	// TypeInput carries one captured input event.
	TypeInput MessageType = "input"

	// TypePing can be used for application-level heartbeats if needed.
	TypePing MessageType = "ping"
)

// Message is the generic container for all WebSocket messages.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// HelloPayload is the payload for TypeHello.
type HelloPayload struct {
	Version string `json:"version"`
}

// InputPayload is the payload for TypeInput.
type InputPayload struct {
	Event winhook.InputEvent `json:"event"`

	// Timestamp is the broadcast time in Unix milliseconds.
	Timestamp int64 `json:"ts"`
}
