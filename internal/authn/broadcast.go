package authn

import "sync"

// broadcaster fans session-change events out to subscribers. Delivery is
// serialized under the mutex so callbacks never overlap.
type broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func(*Session)
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]func(*Session))}
}

func (b *broadcaster) subscribe(fn func(*Session)) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
		})
	}
}

func (b *broadcaster) emit(s *Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, fn := range b.subs {
		fn(s)
	}
}
