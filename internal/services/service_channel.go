package services

import (
	"context"

	"github.com/gofiber/fiber/v2/log"

	"hualien-aid/internal/feed"
	"hualien-aid/internal/models"
	"hualien-aid/internal/repository"
)

type ChannelStore interface {
	FindAll(ctx context.Context) ([]models.Channel, error)
	Insert(ctx context.Context, draft models.ChannelDraft) (*models.Channel, error)
	Update(ctx context.Context, id string, patch models.ChannelPatch) (*models.Channel, error)
	Delete(ctx context.Context, id string) error
}

// ChannelService mirrors LocationService for board posts.
type ChannelService struct {
	Repo      ChannelStore
	Feed      feed.Source
	OnFailure FailureHook
}

func NewChannelService(repo ChannelStore, src feed.Source) *ChannelService {
	return &ChannelService{Repo: repo, Feed: src}
}

func (s *ChannelService) ListAll(ctx context.Context) []models.Channel {
	items, err := s.Repo.FindAll(ctx)
	if err != nil {
		log.Errorf("channels: list failed: %v", err)
		report(s.OnFailure, OpList, err)
		return []models.Channel{}
	}
	return items
}

func (s *ChannelService) Create(ctx context.Context, draft models.ChannelDraft) *models.Channel {
	ch, err := s.Repo.Insert(ctx, draft)
	if err != nil {
		log.Errorf("channels: create %q failed: %v", draft.Title, err)
		report(s.OnFailure, OpCreate, err)
		return nil
	}
	return ch
}

func (s *ChannelService) Update(ctx context.Context, id string, patch models.ChannelPatch) *models.Channel {
	ch, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		log.Errorf("channels: update %s failed: %v", id, err)
		report(s.OnFailure, OpUpdate, err)
		return nil
	}
	return ch
}

func (s *ChannelService) Remove(ctx context.Context, id string) bool {
	if err := s.Repo.Delete(ctx, id); err != nil {
		log.Errorf("channels: remove %s failed: %v", id, err)
		report(s.OnFailure, OpRemove, err)
		return false
	}
	return true
}

func (s *ChannelService) Subscribe(cb func([]models.Channel)) *Subscription {
	return subscribe(s.Feed, repository.ChannelsCollection, s.ListAll, cb)
}

// SetStatus is the only way a post becomes Expired; expires_at never
// triggers it.
func (s *ChannelService) SetStatus(ctx context.Context, id string, status models.ChannelStatus) *models.Channel {
	return s.Update(ctx, id, models.ChannelPatch{Status: &status})
}
