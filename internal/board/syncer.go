package board

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"hualien-aid/internal/models"
	"hualien-aid/internal/services"
)

var (
	ErrUnknownID    = errors.New("no such record")
	ErrBadIndex     = errors.New("index out of range")
	ErrRemote       = errors.New("remote store did not accept the change")
	ErrUploadFailed = errors.New("no image could be uploaded")
)

// User-facing notices.
const (
	NoticeLoadFailed   = "資料載入失敗，請重新整理"
	NoticeSaveFailed   = "儲存失敗，請重試"
	NoticeUpdateFailed = "更新失敗，請重試"
	NoticeRemoveFailed = "刪除失敗，請重試"
	NoticeUploadFailed = "圖片上傳失敗，請重試"
)

// Kinds of change announced through OnChange.
const (
	KindLocations = "locations"
	KindChannels  = "channels"
)

type Notice struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Syncer keeps both boards in step with the access layer and turns every
// failure into exactly one Notice.
type Syncer struct {
	Locations *services.LocationService
	Channels  *services.ChannelService
	Images    *services.ImageService

	Markers *MarkerBoard
	Posts   *ChannelBoard

	// Notify receives user-facing notices. OnChange is told which board
	// changed. Both may be nil.
	Notify   func(Notice)
	OnChange func(kind string)

	mu   sync.Mutex
	subs []*services.Subscription
}

func NewSyncer(locs *services.LocationService, chans *services.ChannelService, images *services.ImageService) *Syncer {
	s := &Syncer{
		Locations: locs,
		Channels:  chans,
		Images:    images,
		Markers:   NewMarkerBoard(),
		Posts:     NewChannelBoard(),
	}
	// list failures only surface through the hook
	readFailed := func(op services.Op, _ error) {
		if op == services.OpList {
			s.notice(NoticeLoadFailed)
		}
	}
	locs.OnFailure = readFailed
	chans.OnFailure = readFailed
	return s
}

// Start loads both collections and subscribes to their change feeds.
func (s *Syncer) Start(ctx context.Context) {
	s.Markers.Replace(s.Locations.ListAll(ctx))
	s.Posts.Replace(s.Channels.ListAll(ctx))
	log.Infof("board: loaded %d locations, %d channels", s.Markers.Len(), len(s.Posts.Snapshot()))

	locSub := s.Locations.Subscribe(func(all []models.Location) {
		s.Markers.Replace(all)
		s.changed(KindLocations)
	})
	chanSub := s.Channels.Subscribe(func(all []models.Channel) {
		s.Posts.Replace(all)
		s.changed(KindChannels)
	})

	s.mu.Lock()
	s.subs = append(s.subs, locSub, chanSub)
	s.mu.Unlock()
}

// Stop releases every subscription. Calling it twice is harmless.
func (s *Syncer) Stop() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()
	for _, sub := range subs {
		sub.Release()
	}
}

func (s *Syncer) notice(msg string) {
	if s.Notify != nil {
		s.Notify(Notice{Message: msg, At: time.Now().UTC()})
	}
}

func (s *Syncer) changed(kind string) {
	if s.OnChange != nil {
		s.OnChange(kind)
	}
}

// uploadAll runs one batch. A non-empty batch with no survivors aborts the
// caller.
func (s *Syncer) uploadAll(ctx context.Context, files []services.FileUpload, owner string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if s.Images == nil {
		s.notice(NoticeUploadFailed)
		return nil, ErrUploadFailed
	}
	urls := s.Images.UploadBatch(ctx, files, owner)
	if len(urls) == 0 {
		s.notice(NoticeUploadFailed)
		return nil, ErrUploadFailed
	}
	return urls, nil
}

func (s *Syncer) CreateLocation(ctx context.Context, draft models.LocationDraft, files []services.FileUpload) (*models.Location, error) {
	urls, err := s.uploadAll(ctx, files, services.OwnerLocation)
	if err != nil {
		return nil, err
	}
	draft.Images = append(draft.Images, urls...)

	loc := s.Locations.Create(ctx, draft)
	if loc == nil {
		s.notice(NoticeSaveFailed)
		return nil, ErrRemote
	}
	s.Markers.MergeCreated(*loc)
	s.changed(KindLocations)
	return loc, nil
}

func (s *Syncer) location(id string) (models.Location, error) {
	loc, ok := s.Markers.Find(id)
	if !ok {
		return models.Location{}, ErrUnknownID
	}
	return loc, nil
}

// settleLocation merges a write result or raises the update notice.
func (s *Syncer) settleLocation(out *models.Location) (*models.Location, error) {
	if out == nil {
		s.notice(NoticeUpdateFailed)
		return nil, ErrRemote
	}
	s.Markers.MergeUpdated(*out)
	s.changed(KindLocations)
	return out, nil
}

func (s *Syncer) SetLocationStatus(ctx context.Context, id string, status models.LocationStatus) (*models.Location, error) {
	if _, err := s.location(id); err != nil {
		return nil, err
	}
	return s.settleLocation(s.Locations.SetStatus(ctx, id, status))
}

func (s *Syncer) AddSupply(ctx context.Context, id, item string) (*models.Location, error) {
	loc, err := s.location(id)
	if err != nil {
		return nil, err
	}
	// blank or already listed: nothing is written and nothing changed
	if item = strings.TrimSpace(item); item == "" || slices.Contains(loc.Supplies, item) {
		return &loc, nil
	}
	return s.settleLocation(s.Locations.AddSupply(ctx, loc, item))
}

func (s *Syncer) RemoveSupply(ctx context.Context, id string, index int) (*models.Location, error) {
	loc, err := s.location(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(loc.Supplies) {
		return nil, ErrBadIndex
	}
	return s.settleLocation(s.Locations.RemoveSupply(ctx, loc, index))
}

func (s *Syncer) AddMessage(ctx context.Context, id string, draft models.MessageDraft, files []services.FileUpload) (*models.Location, error) {
	if _, err := s.location(id); err != nil {
		return nil, err
	}
	urls, err := s.uploadAll(ctx, files, services.OwnerMessage)
	if err != nil {
		return nil, err
	}
	draft.Images = append(draft.Images, urls...)
	return s.settleLocation(s.Locations.AddMessage(ctx, id, draft))
}

func (s *Syncer) AddImages(ctx context.Context, id string, files []services.FileUpload) (*models.Location, error) {
	loc, err := s.location(id)
	if err != nil {
		return nil, err
	}
	urls, err := s.uploadAll(ctx, files, services.OwnerLocation)
	if err != nil {
		return nil, err
	}
	return s.settleLocation(s.Locations.AddImages(ctx, loc, urls))
}

// RemoveImage drops the URL from the marker, then deletes the blob. A blob
// that cannot be deleted is only logged.
func (s *Syncer) RemoveImage(ctx context.Context, id string, index int) (*models.Location, error) {
	loc, err := s.location(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(loc.Images) {
		return nil, ErrBadIndex
	}
	url := loc.Images[index]

	out, err := s.settleLocation(s.Locations.RemoveImage(ctx, loc, index))
	if err != nil {
		return nil, err
	}
	if s.Images != nil && !s.Images.Remove(ctx, url) {
		log.Warnf("board: image %s detached from %s but left in storage", url, id)
	}
	return out, nil
}

func (s *Syncer) RemoveLocation(ctx context.Context, id string) error {
	if _, err := s.location(id); err != nil {
		return err
	}
	if !s.Locations.Remove(ctx, id) {
		s.notice(NoticeRemoveFailed)
		return ErrRemote
	}
	s.Markers.Drop(id)
	s.changed(KindLocations)
	return nil
}

func (s *Syncer) CreateChannel(ctx context.Context, draft models.ChannelDraft, files []services.FileUpload) (*models.Channel, error) {
	urls, err := s.uploadAll(ctx, files, services.OwnerChannel)
	if err != nil {
		return nil, err
	}
	draft.Images = append(draft.Images, urls...)

	ch := s.Channels.Create(ctx, draft)
	if ch == nil {
		s.notice(NoticeSaveFailed)
		return nil, ErrRemote
	}
	s.Posts.MergeCreated(*ch)
	s.changed(KindChannels)
	return ch, nil
}

func (s *Syncer) SetChannelStatus(ctx context.Context, id string, status models.ChannelStatus) (*models.Channel, error) {
	if _, ok := s.Posts.Find(id); !ok {
		return nil, ErrUnknownID
	}
	ch := s.Channels.SetStatus(ctx, id, status)
	if ch == nil {
		s.notice(NoticeUpdateFailed)
		return nil, ErrRemote
	}
	s.Posts.MergeUpdated(*ch)
	s.changed(KindChannels)
	return ch, nil
}

func (s *Syncer) RemoveChannel(ctx context.Context, id string) error {
	if _, ok := s.Posts.Find(id); !ok {
		return ErrUnknownID
	}
	if !s.Channels.Remove(ctx, id) {
		s.notice(NoticeRemoveFailed)
		return ErrRemote
	}
	s.Posts.Drop(id)
	s.changed(KindChannels)
	return nil
}
