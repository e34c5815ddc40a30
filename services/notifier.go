package services

import "sync"

// Notifier broadcasts a payload-free "cart changed" signal to whoever is
// subscribed at emission time. Fire and forget: there is no queue, and a
// subscriber registered after an emission does not see it.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns an unsubscribe func. Unsubscribing
// twice is harmless.
func (n *Notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) Emit() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
