package assistant

import "sync"

// Notifier carries the payload-less "open the chat panel" signal as an
// explicit observer registration instead of an ambient broadcast. Subscribers
// are invoked synchronously in registration order; NotifyOpen never blocks on
// a missing subscriber.
type Notifier struct {
	mu   sync.Mutex
	subs []func()
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback for the open-chat signal.
func (n *Notifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// NotifyOpen fires the signal to all subscribers. Fire-and-forget: there is
// no payload and no reply.
func (n *Notifier) NotifyOpen() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
