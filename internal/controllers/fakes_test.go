package controllers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"hualien-aid/internal/geocode"
	"hualien-aid/internal/models"
	"hualien-aid/internal/repository"
	"hualien-aid/internal/storage"
)

var errDown = errors.New("store down")

type locStore struct {
	mu    sync.Mutex
	items []models.Location
	fail  bool
}

func (s *locStore) FindAll(context.Context) ([]models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items), nil
}

func (s *locStore) Insert(_ context.Context, d models.LocationDraft) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errDown
	}
	loc := d.Document(time.Now().UTC())
	loc.ID = bson.NewObjectID()
	s.items = append([]models.Location{loc}, s.items...)
	return &loc, nil
}

func (s *locStore) Update(_ context.Context, id string, p models.LocationPatch) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errDown
	}
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items[i] = p.Apply(s.items[i])
			out := s.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *locStore) AppendMessage(ctx context.Context, id string, m models.Message) (*models.Location, error) {
	s.mu.Lock()
	var msgs []models.Message
	for _, l := range s.items {
		if l.ID.Hex() == id {
			msgs = append(slices.Clone(l.Messages), m)
		}
	}
	s.mu.Unlock()
	return s.Update(ctx, id, models.LocationPatch{Messages: &msgs})
}

func (s *locStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errDown
	}
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = slices.Delete(s.items, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

type chanStore struct {
	mu    sync.Mutex
	items []models.Channel
}

func (s *chanStore) FindAll(context.Context) ([]models.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items), nil
}

func (s *chanStore) Insert(_ context.Context, d models.ChannelDraft) (*models.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := d.Document(time.Now().UTC())
	ch.ID = bson.NewObjectID()
	s.items = append([]models.Channel{ch}, s.items...)
	return &ch, nil
}

func (s *chanStore) Update(_ context.Context, id string, p models.ChannelPatch) (*models.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items[i] = p.Apply(s.items[i])
			out := s.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *chanStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = slices.Delete(s.items, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

type object struct {
	data        []byte
	contentType string
}

type memBucket struct {
	mu      sync.Mutex
	objects map[string]object
}

func newMemBucket() *memBucket { return &memBucket{objects: map[string]object{}} }

func (b *memBucket) Name() string { return "location-images" }

func (b *memBucket) Put(_ context.Context, key string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = object{data: data, contentType: contentType}
	return nil
}

func (b *memBucket) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.objects[key]
	if !ok {
		return nil, "", storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(o.data)), o.contentType, nil
}

func (b *memBucket) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *memBucket) PublicURL(key string) string {
	return "http://localhost:8000/storage/location-images/" + key
}

type noPlaces struct{}

func (noPlaces) Search(context.Context, geocode.Query) ([]geocode.Candidate, error) {
	return nil, nil
}
