// Package events provides the in-process observer surface. The rendering
// shell subscribes to the core's notifications; the core never touches the
// presentation layer directly.
package events

import "sync"

// BasketChanged is published after every basket mutation.
type BasketChanged struct {
	Count int
}

// HeaderRefresh asks the shell to re-render its header (badge counts, client
// name). Published on profile changes and cross-tab reloads.
type HeaderRefresh struct{}

// Navigate requests a module switch.
type Navigate struct {
	Module string
	Params map[string]string
}

// FundsRefreshed is published after a successful feed load.
type FundsRefreshed struct {
	Count int
}

// Handler receives every published event; handlers switch on the event type.
type Handler func(evt any)

// Bus is a synchronous observer registry. Publish dispatches on the caller's
// goroutine; handlers must not block.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers evt to every current subscriber.
func (b *Bus) Publish(evt any) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(evt)
	}
}
