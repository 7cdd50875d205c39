package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"hualien-aid/internal/feed"
	"hualien-aid/internal/models"
	"hualien-aid/internal/repository"
)

type LocationStore interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	Insert(ctx context.Context, draft models.LocationDraft) (*models.Location, error)
	Update(ctx context.Context, id string, patch models.LocationPatch) (*models.Location, error)
	AppendMessage(ctx context.Context, id string, msg models.Message) (*models.Location, error)
	Delete(ctx context.Context, id string) error
}

// LocationService is the access layer for markers. Failures never reach the
// caller as errors: they come back as nil, false or an empty list and are
// logged here.
type LocationService struct {
	Repo      LocationStore
	Feed      feed.Source
	OnFailure FailureHook
}

func NewLocationService(repo LocationStore, src feed.Source) *LocationService {
	return &LocationService{Repo: repo, Feed: src}
}

// ListAll returns every marker newest first, or an empty list on failure.
func (s *LocationService) ListAll(ctx context.Context) []models.Location {
	items, err := s.Repo.FindAll(ctx)
	if err != nil {
		log.Errorf("locations: list failed: %v", err)
		report(s.OnFailure, OpList, err)
		return []models.Location{}
	}
	return items
}

func (s *LocationService) Create(ctx context.Context, draft models.LocationDraft) *models.Location {
	loc, err := s.Repo.Insert(ctx, draft)
	if err != nil {
		log.Errorf("locations: create %q failed: %v", draft.Title, err)
		report(s.OnFailure, OpCreate, err)
		return nil
	}
	return loc
}

func (s *LocationService) Update(ctx context.Context, id string, patch models.LocationPatch) *models.Location {
	loc, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		log.Errorf("locations: update %s failed: %v", id, err)
		report(s.OnFailure, OpUpdate, err)
		return nil
	}
	return loc
}

func (s *LocationService) Remove(ctx context.Context, id string) bool {
	if err := s.Repo.Delete(ctx, id); err != nil {
		log.Errorf("locations: remove %s failed: %v", id, err)
		report(s.OnFailure, OpRemove, err)
		return false
	}
	return true
}

// Subscribe calls cb with the full refreshed list after any change to the
// locations collection. Callers replace their copy with it, never merge.
func (s *LocationService) Subscribe(cb func([]models.Location)) *Subscription {
	return subscribe(s.Feed, repository.LocationsCollection, s.ListAll, cb)
}

func (s *LocationService) SetStatus(ctx context.Context, id string, status models.LocationStatus) *models.Location {
	return s.Update(ctx, id, models.LocationPatch{Status: &status})
}

// AddSupply appends a trimmed item. Blank items and exact duplicates are a
// no-op and return loc unchanged without touching the store.
func (s *LocationService) AddSupply(ctx context.Context, loc models.Location, item string) *models.Location {
	item = strings.TrimSpace(item)
	if item == "" || slices.Contains(loc.Supplies, item) {
		return &loc
	}
	supplies := append(slices.Clone(loc.Supplies), item)
	return s.Update(ctx, loc.ID.Hex(), models.LocationPatch{Supplies: &supplies})
}

func (s *LocationService) RemoveSupply(ctx context.Context, loc models.Location, index int) *models.Location {
	if index < 0 || index >= len(loc.Supplies) {
		log.Warnf("locations: supply index %d out of range for %s", index, loc.ID.Hex())
		return nil
	}
	supplies := slices.Delete(slices.Clone(loc.Supplies), index, index+1)
	return s.Update(ctx, loc.ID.Hex(), models.LocationPatch{Supplies: &supplies})
}

// AddMessage stamps the draft with a fresh id and the current time and
// appends it to the thread.
func (s *LocationService) AddMessage(ctx context.Context, id string, draft models.MessageDraft) *models.Location {
	msg := models.Message{
		ID:        uuid.NewString(),
		Author:    strings.TrimSpace(draft.Author),
		Content:   strings.TrimSpace(draft.Content),
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Images:    draft.Images,
	}
	loc, err := s.Repo.AppendMessage(ctx, id, msg)
	if err != nil {
		log.Errorf("locations: message on %s failed: %v", id, err)
		report(s.OnFailure, OpUpdate, err)
		return nil
	}
	return loc
}

func (s *LocationService) AddImages(ctx context.Context, loc models.Location, urls []string) *models.Location {
	if len(urls) == 0 {
		return &loc
	}
	images := append(slices.Clone(loc.Images), urls...)
	return s.Update(ctx, loc.ID.Hex(), models.LocationPatch{Images: &images})
}

func (s *LocationService) RemoveImage(ctx context.Context, loc models.Location, index int) *models.Location {
	if index < 0 || index >= len(loc.Images) {
		log.Warnf("locations: image index %d out of range for %s", index, loc.ID.Hex())
		return nil
	}
	images := slices.Delete(slices.Clone(loc.Images), index, index+1)
	return s.Update(ctx, loc.ID.Hex(), models.LocationPatch{Images: &images})
}
