package oauth

import "encoding/json"

// Window is a handle to an opened popup. Implementations must be comparable,
// since incoming messages are matched against it by identity.
type Window interface {
	Closed() bool
}

// Opener opens a popup window.
type Opener interface {
	Open(url, name string) (Window, error)
}

// Message is a cross-window message.
type Message struct {
	Source Window
	Origin string
	Data   json.RawMessage
}

// Listener receives messages from an EventTarget.
type Listener interface {
	HandleMessage(msg Message)
}

// EventTarget dispatches window messages to listeners. Listeners are
// identified by equality, so implementations must be comparable.
type EventTarget interface {
	AddMessageListener(l Listener)
	RemoveMessageListener(l Listener)
}
