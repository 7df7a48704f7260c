package infrastructure

import (
	"log/slog"
	"sync"

	"vantraResto/internal/modules/reservations/domain"
)

// subscriber pairs a callback with a liveness flag so an unsubscribe that
// lands mid fan-out suppresses any later delivery to that callback.
type subscriber struct {
	mu     sync.Mutex
	fn     func(domain.Event)
	active bool
}

func (s *subscriber) deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *subscriber) invoke(ev domain.Event) {
	s.mu.Lock()
	alive := s.active
	s.mu.Unlock()
	if !alive {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("store subscriber panic", slog.Any("error", r))
		}
	}()
	s.fn(ev)
}

// Notifier fans store events out to registered observers in registration
// order. It decouples the store from the surfaces that render it: the board
// feed, the event bridge and any test observer all attach here.
type Notifier struct {
	mu   sync.Mutex
	subs []*subscriber
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// is idempotent and safe to call from inside the callback itself.
func (n *Notifier) Subscribe(fn func(domain.Event)) func() {
	if fn == nil {
		return func() {}
	}
	sub := &subscriber{fn: fn, active: true}
	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.deactivate()
			n.remove(sub)
		})
	}
}

func (n *Notifier) remove(target *subscriber) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub == target {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every live subscriber in registration order. The
// subscriber list is copied first so callbacks may subscribe or unsubscribe
// without invalidating the iteration.
func (n *Notifier) Publish(ev domain.Event) {
	n.mu.Lock()
	current := append([]*subscriber(nil), n.subs...)
	n.mu.Unlock()

	for _, sub := range current {
		sub.invoke(ev)
	}
}
