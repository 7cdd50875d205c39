package controllers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Event is one server-sent event.
type Event struct {
	Name string
	Data []byte
}

const streamBuffer = 16

// StreamHub fans events out to every connected /api/stream client. A client
// whose buffer is full misses the event; every collection event is a full
// snapshot, so the next one catches it up.
type StreamHub struct {
	// Initial returns the events a client receives right after connecting.
	Initial   func() []Event
	KeepAlive time.Duration

	mu      sync.Mutex
	clients map[chan Event]struct{}
	closed  bool
}

func NewStreamHub() *StreamHub {
	return &StreamHub{
		KeepAlive: 25 * time.Second,
		clients:   make(map[chan Event]struct{}),
	}
}

// NewEvent encodes v as the event payload.
func NewEvent(name string, v any) (Event, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s event: %w", name, err)
	}
	return Event{Name: name, Data: data}, nil
}

func (h *StreamHub) Broadcast(name string, v any) {
	ev, err := NewEvent(name, v)
	if err != nil {
		log.Errorf("stream: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
			log.Warnf("stream: slow client dropped a %s event", name)
		}
	}
}

func (h *StreamHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *StreamHub) add() (chan Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	ch := make(chan Event, streamBuffer)
	h.clients[ch] = struct{}{}
	return ch, true
}

func (h *StreamHub) remove(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

// Close ends every open stream. Later connections are refused.
func (h *StreamHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

func writeEvent(w *bufio.Writer, ev Event) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data); err != nil {
		return err
	}
	return w.Flush()
}

// @Summary      Live updates
// @Description  Server-sent events: "locations" and "channels" carry full snapshots, "notice" carries a failure message
// @Tags         stream
// @Produce      text/event-stream
// @Security     ApiKeyAuth
// @Success      200
// @Router       /api/stream [get]
func (h *StreamHub) Handler(c *fiber.Ctx) error {
	ch, ok := h.add()
	if !ok {
		return fiber.NewError(fiber.StatusServiceUnavailable, "shutting down")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	var initial []Event
	if h.Initial != nil {
		initial = h.Initial()
	}
	keepAlive := h.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 25 * time.Second
	}

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer h.remove(ch)
		for _, ev := range initial {
			if err := writeEvent(w, ev); err != nil {
				return
			}
		}

		tick := time.NewTicker(keepAlive)
		defer tick.Stop()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				if err := writeEvent(w, ev); err != nil {
					return
				}
			case <-tick.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}
