package oauth

import "sync"

var _ EventTarget = (*MessageBus)(nil)

// MessageBus is a concurrency safe EventTarget. Adding a listener that is
// already registered has no effect.
type MessageBus struct {
	mu        sync.Mutex
	listeners []Listener
}

// NewMessageBus creates an empty MessageBus
func NewMessageBus() *MessageBus {
	return &MessageBus{}
}

func (b *MessageBus) AddMessageListener(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

func (b *MessageBus) RemoveMessageListener(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Post delivers msg to every listener registered at the time of the call.
// Listeners run on the calling goroutine, outside the bus lock.
func (b *MessageBus) Post(msg Message) {
	b.mu.Lock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	for _, l := range listeners {
		l.HandleMessage(msg)
	}
}

// Len returns the number of registered listeners
func (b *MessageBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
