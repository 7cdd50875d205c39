package board

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hualien-aid/internal/feed"
	"hualien-aid/internal/models"
	"hualien-aid/internal/repository"
	"hualien-aid/internal/services"
)

var errDown = errors.New("store down")

type fakeLocations struct {
	mu      sync.Mutex
	items   []models.Location
	failAll bool
	inserts int
}

func (f *fakeLocations) FindAll(context.Context) ([]models.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errDown
	}
	return slices.Clone(f.items), nil
}

func (f *fakeLocations) Insert(_ context.Context, d models.LocationDraft) (*models.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.failAll {
		return nil, errDown
	}
	loc := d.Document(time.Now().UTC())
	loc.ID = bson.NewObjectID()
	f.items = append([]models.Location{loc}, f.items...)
	return &loc, nil
}

func (f *fakeLocations) Update(_ context.Context, id string, p models.LocationPatch) (*models.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errDown
	}
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items[i] = p.Apply(f.items[i])
			out := f.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeLocations) AppendMessage(_ context.Context, id string, m models.Message) (*models.Location, error) {
	msgs := []models.Message{m}
	f.mu.Lock()
	for _, l := range f.items {
		if l.ID.Hex() == id {
			msgs = append(slices.Clone(l.Messages), m)
		}
	}
	f.mu.Unlock()
	return f.Update(context.Background(), id, models.LocationPatch{Messages: &msgs})
}

func (f *fakeLocations) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errDown
	}
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items = slices.Delete(f.items, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeLocations) set(items ...models.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

type fakeChannels struct {
	mu    sync.Mutex
	items []models.Channel
}

func (f *fakeChannels) FindAll(context.Context) ([]models.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items), nil
}

func (f *fakeChannels) Insert(_ context.Context, d models.ChannelDraft) (*models.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := d.Document(time.Now().UTC())
	ch.ID = bson.NewObjectID()
	f.items = append([]models.Channel{ch}, f.items...)
	return &ch, nil
}

func (f *fakeChannels) Update(_ context.Context, id string, p models.ChannelPatch) (*models.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items[i] = p.Apply(f.items[i])
			out := f.items[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeChannels) Delete(context.Context, string) error { return errDown }

type countingBucket struct {
	mu   sync.Mutex
	puts int
	fail bool
}

func (b *countingBucket) Name() string { return "test" }

func (b *countingBucket) Put(_ context.Context, _ string, r io.Reader, _ string) error {
	_, _ = io.Copy(io.Discard, r)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.puts++
	if b.fail {
		return errDown
	}
	return nil
}

func (b *countingBucket) Open(context.Context, string) (io.ReadCloser, string, error) {
	return nil, "", errDown
}

func (b *countingBucket) Remove(context.Context, string) error { return nil }

func (b *countingBucket) PublicURL(key string) string { return "https://img.test/" + key }

type harness struct {
	locs    *fakeLocations
	chans   *fakeChannels
	bucket  *countingBucket
	hub     *feed.Hub
	syncer  *Syncer
	mu      sync.Mutex
	notices []Notice
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		locs:   &fakeLocations{},
		chans:  &fakeChannels{},
		bucket: &countingBucket{},
		hub:    feed.NewHub(),
	}
	h.syncer = NewSyncer(
		services.NewLocationService(h.locs, h.hub),
		services.NewChannelService(h.chans, h.hub),
		services.NewImageService(h.bucket),
	)
	h.syncer.Notify = func(n Notice) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.notices = append(h.notices, n)
	}
	t.Cleanup(h.syncer.Stop)
	return h
}

func (h *harness) noticeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.notices)
}

func draft(title string) models.LocationDraft {
	return models.LocationDraft{
		Position:    models.NewPosition(23.6, 121.4),
		Title:       title,
		Description: "d",
		Category:    models.CategoryLabor,
	}
}

func uploads(n int) []services.FileUpload {
	out := make([]services.FileUpload, n)
	for i := range out {
		out[i] = services.FileUpload{Name: "p.jpg", ContentType: "image/jpeg", Data: []byte("x")}
	}
	return out
}

func TestCreateFailureKeepsCollectionAndNotifiesOnce(t *testing.T) {
	h := newHarness(t)
	existing := marker(1, "existing", models.CategoryOther, "")
	h.locs.set(existing)
	h.syncer.Start(context.Background())
	before := h.syncer.Markers.Snapshot()

	h.locs.mu.Lock()
	h.locs.failAll = true
	h.locs.mu.Unlock()

	loc, err := h.syncer.CreateLocation(context.Background(), draft("new"), nil)
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, before, h.syncer.Markers.Snapshot())
	assert.Equal(t, 1, h.noticeCount())
	assert.Equal(t, NoticeSaveFailed, h.notices[0].Message)
}

func TestCreateMergesReturnedRow(t *testing.T) {
	h := newHarness(t)
	h.syncer.Start(context.Background())

	loc, err := h.syncer.CreateLocation(context.Background(), draft("new"), nil)
	require.NoError(t, err)
	got, ok := h.syncer.Markers.Find(loc.ID.Hex())
	assert.True(t, ok)
	assert.Equal(t, "new", got.Title)
	assert.Zero(t, h.noticeCount())
}

func TestCreateUploadsAtMostThreeImages(t *testing.T) {
	h := newHarness(t)
	loc, err := h.syncer.CreateLocation(context.Background(), draft("with photos"), uploads(4))
	require.NoError(t, err)
	assert.Equal(t, 3, h.bucket.puts)
	assert.Len(t, loc.Images, 3)
	for _, u := range loc.Images {
		assert.True(t, strings.HasPrefix(u, "https://img.test/images/location-"), u)
	}
}

func TestTotalUploadFailureAbortsCreate(t *testing.T) {
	h := newHarness(t)
	h.bucket.fail = true

	loc, err := h.syncer.CreateLocation(context.Background(), draft("with photos"), uploads(2))
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Zero(t, h.locs.inserts, "nothing is persisted without its images")
	assert.Equal(t, 1, h.noticeCount())
}

func TestSubscriptionSnapshotWins(t *testing.T) {
	h := newHarness(t)
	a := marker(1, "A", models.CategoryOther, "")
	b := marker(2, "B", models.CategoryOther, "")
	h.locs.set(a, b)

	changed := make(chan string, 8)
	h.syncer.OnChange = func(kind string) { changed <- kind }
	h.syncer.Start(context.Background())
	assert.Equal(t, []string{"A", "B"}, ids(h.syncer.Markers.Snapshot()))

	// a local merge for B is still pending when the snapshot without B lands
	b.Title = "B edited"
	h.syncer.Markers.MergeUpdated(b)

	h.locs.set(a)
	require.NoError(t, h.hub.Publish(context.Background(), repository.LocationsCollection))

	select {
	case kind := <-changed:
		assert.Equal(t, KindLocations, kind)
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh")
	}
	assert.Equal(t, []string{"A"}, ids(h.syncer.Markers.Snapshot()))
}

func TestLoadFailureRaisesNotice(t *testing.T) {
	h := newHarness(t)
	h.locs.failAll = true
	h.syncer.Start(context.Background())

	assert.Empty(t, h.syncer.Markers.Snapshot())
	assert.Equal(t, 1, h.noticeCount())
	assert.Equal(t, NoticeLoadFailed, h.notices[0].Message)
}

func TestAddSupplyNoopDoesNotBroadcast(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	var changes []string
	h.syncer.OnChange = func(kind string) { changes = append(changes, kind) }
	h.syncer.Start(ctx)

	loc, err := h.syncer.CreateLocation(ctx, draft("site"), nil)
	require.NoError(t, err)
	id := loc.ID.Hex()
	require.Len(t, changes, 1)

	_, err = h.syncer.AddSupply(ctx, id, "雨鞋")
	require.NoError(t, err)
	require.Len(t, changes, 2)

	for _, item := range []string{"雨鞋", " 雨鞋 ", "  "} {
		out, err := h.syncer.AddSupply(ctx, id, item)
		require.NoError(t, err)
		assert.Equal(t, []string{"雨鞋"}, out.Supplies)
	}
	assert.Len(t, changes, 2)
	assert.Zero(t, h.noticeCount())
}

func TestLocationEditsThroughSyncer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.syncer.Start(ctx)

	loc, err := h.syncer.CreateLocation(ctx, draft("site"), nil)
	require.NoError(t, err)
	id := loc.ID.Hex()

	out, err := h.syncer.AddSupply(ctx, id, "雨鞋")
	require.NoError(t, err)
	assert.Equal(t, []string{"雨鞋"}, out.Supplies)

	out, err = h.syncer.AddSupply(ctx, id, "雨鞋")
	require.NoError(t, err)
	assert.Len(t, out.Supplies, 1)

	_, err = h.syncer.RemoveSupply(ctx, id, 3)
	assert.ErrorIs(t, err, ErrBadIndex)

	out, err = h.syncer.AddMessage(ctx, id, models.MessageDraft{Author: "a", Content: "hi"}, nil)
	require.NoError(t, err)
	assert.Len(t, out.Messages, 1)

	out, err = h.syncer.AddImages(ctx, id, uploads(1))
	require.NoError(t, err)
	require.Len(t, out.Images, 1)

	out, err = h.syncer.RemoveImage(ctx, id, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Images)

	out, err = h.syncer.SetLocationStatus(ctx, id, models.LocationCompleted)
	require.NoError(t, err)
	assert.Contains(t, ids(h.syncer.Markers.Completed()), "site")

	_, err = h.syncer.SetLocationStatus(ctx, bson.NewObjectID().Hex(), models.LocationCompleted)
	assert.ErrorIs(t, err, ErrUnknownID)

	require.NoError(t, h.syncer.RemoveLocation(ctx, id))
	_, ok := h.syncer.Markers.Find(id)
	assert.False(t, ok)
	assert.Zero(t, h.noticeCount())
}

func TestChannelFlowThroughSyncer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.syncer.Start(ctx)

	ch, err := h.syncer.CreateChannel(ctx, models.ChannelDraft{
		Type: models.ChannelAnnouncement, Title: "道路搶通", Content: "台9線恢復通行",
		Author: "公路局", Contact: "1968", Priority: models.PriorityHigh,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, ch.ID, h.syncer.Posts.Snapshot()[0].ID)

	out, err := h.syncer.SetChannelStatus(ctx, ch.ID.Hex(), models.ChannelExpired)
	require.NoError(t, err)
	assert.Equal(t, models.ChannelExpired, out.Status)

	err = h.syncer.RemoveChannel(ctx, ch.ID.Hex())
	assert.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, 1, h.noticeCount())
	assert.Equal(t, NoticeRemoveFailed, h.notices[0].Message)
}
