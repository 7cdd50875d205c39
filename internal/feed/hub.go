package feed

import (
	"context"
	"sync"
)

// Hub is an in-process feed for a single instance deployment and for tests.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Signal]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Signal]struct{})}
}

func (h *Hub) Watch(ctx context.Context, collection string) (<-chan Signal, error) {
	ch := make(chan Signal, 1)

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[chan Signal]struct{})
	}
	h.subs[collection][ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs[collection], ch)
		close(ch)
		h.mu.Unlock()
	}()
	return ch, nil
}

func (h *Hub) Publish(_ context.Context, collection string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[collection] {
		notify(ch)
	}
	return nil
}

// Watchers reports how many live watchers a collection has.
func (h *Hub) Watchers(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection])
}
