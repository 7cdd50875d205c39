// Package board holds the in-memory copy of both collections and the views
// derived from it. The copy is replaced wholesale whenever a fresh snapshot
// arrives; local writes only ever merge the store's own return values.
package board

import (
	"slices"
	"strings"
	"sync"

	"hualien-aid/internal/models"
)

type MarkerBoard struct {
	mu  sync.RWMutex
	all []models.Location
}

func NewMarkerBoard() *MarkerBoard {
	return &MarkerBoard{all: []models.Location{}}
}

// Replace swaps in a full snapshot.
func (b *MarkerBoard) Replace(all []models.Location) {
	next := slices.Clone(all)
	if next == nil {
		next = []models.Location{}
	}
	b.mu.Lock()
	b.all = next
	b.mu.Unlock()
}

func (b *MarkerBoard) Snapshot() []models.Location {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.all)
}

func (b *MarkerBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.all)
}

// MergeCreated replaces the row with the same id, or appends it.
func (b *MarkerBoard) MergeCreated(loc models.Location) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(loc.ID.Hex()); i >= 0 {
		b.all[i] = loc
		return
	}
	b.all = append(b.all, loc)
}

// MergeUpdated replaces the row with the same id. It reports false when the
// id is not in the current copy.
func (b *MarkerBoard) MergeUpdated(loc models.Location) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(loc.ID.Hex())
	if i < 0 {
		return false
	}
	b.all[i] = loc
	return true
}

// Drop removes a row after the store confirmed its deletion.
func (b *MarkerBoard) Drop(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		b.all = slices.Delete(b.all, i, i+1)
	}
}

func (b *MarkerBoard) Find(id string) (models.Location, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.all[i], true
	}
	return models.Location{}, false
}

func (b *MarkerBoard) indexOf(id string) int {
	return slices.IndexFunc(b.all, func(l models.Location) bool { return l.ID.Hex() == id })
}

// Visible is every open marker whose category passes f.
func (b *MarkerBoard) Visible(f Filters) []models.Location {
	return b.filter(func(l models.Location) bool {
		return !l.IsCompleted() && f.Matches(l.Category)
	})
}

func (b *MarkerBoard) Completed() []models.Location {
	return b.filter(models.Location.IsCompleted)
}

// Search matches q case-insensitively against title, description, category
// and every supply item. Completed markers are included.
func (b *MarkerBoard) Search(q string) []models.Location {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []models.Location{}
	}
	return b.filter(func(l models.Location) bool { return matches(l, q) })
}

// Display is what the map shows: open search hits while a query is
// present, otherwise the filtered view. The two modes never combine.
func (b *MarkerBoard) Display(q string, f Filters) []models.Location {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return b.Visible(f)
	}
	return b.filter(func(l models.Location) bool { return !l.IsCompleted() && matches(l, q) })
}

func (b *MarkerBoard) filter(keep func(models.Location) bool) []models.Location {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := []models.Location{}
	for _, l := range b.all {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// matches expects q already lower-cased.
func matches(l models.Location, q string) bool {
	if strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q) ||
		strings.Contains(strings.ToLower(string(l.Category)), q) {
		return true
	}
	return slices.ContainsFunc(l.Supplies, func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	})
}
