package board

import (
	"slices"
	"sync"

	"hualien-aid/internal/models"
)

// StatusAll is the status filter value that keeps every post.
const StatusAll = "全部"

type ChannelBoard struct {
	mu  sync.RWMutex
	all []models.Channel
}

func NewChannelBoard() *ChannelBoard {
	return &ChannelBoard{all: []models.Channel{}}
}

func (b *ChannelBoard) Replace(all []models.Channel) {
	next := slices.Clone(all)
	if next == nil {
		next = []models.Channel{}
	}
	b.mu.Lock()
	b.all = next
	b.mu.Unlock()
}

func (b *ChannelBoard) Snapshot() []models.Channel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.all)
}

// MergeCreated replaces the post with the same id, or puts it first.
func (b *ChannelBoard) MergeCreated(ch models.Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(ch.ID.Hex()); i >= 0 {
		b.all[i] = ch
		return
	}
	b.all = append([]models.Channel{ch}, b.all...)
}

func (b *ChannelBoard) MergeUpdated(ch models.Channel) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(ch.ID.Hex())
	if i < 0 {
		return false
	}
	b.all[i] = ch
	return true
}

func (b *ChannelBoard) Drop(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		b.all = slices.Delete(b.all, i, i+1)
	}
}

func (b *ChannelBoard) Find(id string) (models.Channel, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.all[i], true
	}
	return models.Channel{}, false
}

func (b *ChannelBoard) indexOf(id string) int {
	return slices.IndexFunc(b.all, func(c models.Channel) bool { return c.ID.Hex() == id })
}

// ByTab returns the posts of one type, optionally narrowed to a status.
// An empty type or a status of "" or StatusAll does not filter.
func (b *ChannelBoard) ByTab(t models.ChannelType, status models.ChannelStatus) []models.Channel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := []models.Channel{}
	for _, c := range b.all {
		if t != "" && c.Type != t {
			continue
		}
		if status != "" && status != StatusAll && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}
