package store

import "sync"

// hub is the in-process pub-sub used to give subscriptions push semantics
// for both backends: the facade publishes after every successful mutation
// and subscribers re-list and deliver. No interval polling.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[topic]map[int]func()
}

// topic identifies one (entity collection, owner) stream.
type topic struct {
	entity string
	owner  string
}

func newHub() *hub {
	return &hub{subs: make(map[topic]map[int]func())}
}

// subscribe registers fn for a topic and returns an idempotent cancel
// function. Cancelling one subscription does not affect others.
func (h *hub) subscribe(t topic, fn func()) func() {
	h.mu.Lock()
	if h.subs[t] == nil {
		h.subs[t] = make(map[int]func())
	}
	id := h.next
	h.next++
	h.subs[t][id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[t], id)
			h.mu.Unlock()
		})
	}
}

// publish invokes every subscriber of the topic. Callbacks run outside the
// lock so they may call back into the facade.
func (h *hub) publish(t topic) {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs[t]))
	for _, fn := range h.subs[t] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
