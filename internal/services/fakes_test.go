package services

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"hualien-aid/internal/models"
	"hualien-aid/internal/repository"
)

var errRemote = errors.New("remote store unavailable")

// memLocations is an in-memory LocationStore.
type memLocations struct {
	mu      sync.Mutex
	items   []models.Location
	fail    bool
	updates int
}

func (m *memLocations) FindAll(context.Context) ([]models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	return slices.Clone(m.items), nil
}

func (m *memLocations) Insert(_ context.Context, d models.LocationDraft) (*models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	loc := d.Document(time.Now().UTC())
	loc.ID = bson.NewObjectID()
	m.items = append([]models.Location{loc}, m.items...)
	return &loc, nil
}

func (m *memLocations) Update(_ context.Context, id string, p models.LocationPatch) (*models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.fail {
		return nil, errRemote
	}
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items[i] = p.Apply(m.items[i])
			out := m.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memLocations) AppendMessage(_ context.Context, id string, msg models.Message) (*models.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items[i].Messages = append(m.items[i].Messages, msg)
			out := m.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memLocations) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errRemote
	}
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func bsonID(n byte) bson.ObjectID {
	var id bson.ObjectID
	id[11] = n
	return id
}

func (m *memLocations) set(items ...models.Location) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

type memChannels struct {
	mu    sync.Mutex
	items []models.Channel
	fail  bool
}

func (m *memChannels) FindAll(context.Context) ([]models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	return slices.Clone(m.items), nil
}

func (m *memChannels) Insert(_ context.Context, d models.ChannelDraft) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	ch := d.Document(time.Now().UTC())
	ch.ID = bson.NewObjectID()
	m.items = append([]models.Channel{ch}, m.items...)
	return &ch, nil
}

func (m *memChannels) Update(_ context.Context, id string, p models.ChannelPatch) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRemote
	}
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items[i] = p.Apply(m.items[i])
			out := m.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memChannels) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errRemote
	}
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

// memBucket records every put; failOn picks the keys that fail.
type memBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    []string
	failOn  func(key string) bool
}

func newMemBucket() *memBucket {
	return &memBucket{objects: map[string][]byte{}}
}

func (b *memBucket) Name() string { return "mem" }

func (b *memBucket) Put(_ context.Context, key string, body io.Reader, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.puts = append(b.puts, key)
	if b.failOn != nil && b.failOn(key) {
		return errRemote
	}
	b.objects[key] = data
	return nil
}

func (b *memBucket) Open(context.Context, string) (io.ReadCloser, string, error) {
	return nil, "", errors.New("not used")
}

func (b *memBucket) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[key]; !ok {
		return errRemote
	}
	delete(b.objects, key)
	return nil
}

func (b *memBucket) PublicURL(key string) string {
	return "https://cdn.test/location-images/" + key
}

func (b *memBucket) putCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.puts)
}
