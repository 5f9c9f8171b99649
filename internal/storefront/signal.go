package storefront

import "sync"

// CountSignal is an observable integer owned by the session and consumed
// by whatever renders the cart badge. Subscribers register a callback
// and get the cancel func back, so every consumer unsubscribes
// deterministically instead of sharing mutable state.
type CountSignal struct {
	mu     sync.Mutex
	value  int
	nextID int
	subs   map[int]func(int)

	// notifyMu serializes deliveries: the initial callback from
	// Subscribe and the fan-out from Set never interleave, so a
	// subscriber cannot see a fresh value followed by a stale one.
	notifyMu sync.Mutex
}

func NewCountSignal() *CountSignal {
	return &CountSignal{subs: make(map[int]func(int))}
}

// Get returns the current value.
func (s *CountSignal) Get() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores a new value and notifies every subscriber. Callbacks run
// outside the state lock so a subscriber may read the signal, but must
// not subscribe from inside a callback.
func (s *CountSignal) Set(value int) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.value = value
	callbacks := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(value)
	}
}

// Subscribe registers fn and immediately invokes it with the current
// value. The returned cancel func removes the subscription; calling it
// more than once is safe.
func (s *CountSignal) Subscribe(fn func(int)) (cancel func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.value
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
