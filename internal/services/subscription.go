package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2/log"

	"hualien-aid/internal/feed"
)

// Subscription is the handle returned by Subscribe. Release stops further
// callbacks; it may be called any number of times, from any goroutine,
// including from inside the callback itself.
type Subscription struct {
	cancel   context.CancelFunc
	once     sync.Once
	mu       sync.Mutex // held while a callback runs
	released atomic.Bool
	done     chan struct{}
}

func newSubscription() (*Subscription, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	return &Subscription{cancel: cancel, done: make(chan struct{})}, ctx
}

// Release is safe on a subscription whose watch never established.
// Once it returns no new callback starts. A callback already running on
// another goroutine is allowed to finish.
func (s *Subscription) Release() {
	s.once.Do(func() {
		s.released.Store(true)
		s.cancel()
	})
	// a delivery that took the lock before the flag flipped has already
	// started its callback; any later one sees the flag
	if s.mu.TryLock() {
		s.mu.Unlock()
	}
}

// Done is closed when the watch loop has exited.
func (s *Subscription) Done() <-chan struct{} { return s.done }

func (s *Subscription) deliver(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released.Load() {
		return
	}
	fn()
}

// subscribe re-reads the whole collection on every change signal and hands
// the fresh snapshot to cb. Signals carry no payload.
func subscribe[T any](src feed.Source, collection string, list func(context.Context) []T, cb func([]T)) *Subscription {
	s, ctx := newSubscription()
	if src == nil {
		log.Warnf("%s: no change feed configured, live updates disabled", collection)
		close(s.done)
		return s
	}

	signals, err := src.Watch(ctx, collection)
	if err != nil {
		log.Errorf("%s: subscribe failed: %v", collection, err)
		close(s.done)
		return s
	}

	go func() {
		defer close(s.done)
		for range signals {
			if s.released.Load() {
				return
			}
			snapshot := list(ctx)
			s.deliver(func() { cb(snapshot) })
		}
	}()
	return s
}
