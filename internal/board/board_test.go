package board

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hualien-aid/internal/models"
)

func oid(n byte) bson.ObjectID {
	var id bson.ObjectID
	id[11] = n
	return id
}

func marker(n byte, title string, cat models.Category, status models.LocationStatus, supplies ...string) models.Location {
	return models.Location{
		ID:       oid(n),
		Position: models.NewPosition(23.97, 121.6),
		Title:    title,
		Category: cat,
		Status:   status,
		Supplies: supplies,
	}
}

func ids(items []models.Location) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.Title
	}
	return out
}

func seeded() *MarkerBoard {
	b := NewMarkerBoard()
	b.Replace([]models.Location{
		marker(1, "Water Station", models.CategorySupplies, ""),
		marker(2, "光復國小避難所", models.CategoryLodging, models.LocationActive, "毛毯"),
		marker(3, "Shuttle bus", models.CategoryTransport, models.LocationCompleted),
		marker(4, "Clinic", models.CategoryMedical, models.LocationActive, "bottled WATER"),
	})
	return b
}

func TestVisibleAndCompletedViews(t *testing.T) {
	b := seeded()

	assert.Equal(t, []string{"Water Station", "光復國小避難所", "Clinic"}, ids(b.Visible(nil)))
	assert.Equal(t, []string{"Shuttle bus"}, ids(b.Completed()))

	f := Filters{models.CategoryMedical, models.CategorySupplies}
	assert.Equal(t, []string{"Water Station", "Clinic"}, ids(b.Visible(f)), "order follows the snapshot")

	// completed markers stay out even when their category is selected
	assert.Empty(t, b.Visible(Filters{models.CategoryTransport}))
}

func TestCompletingMovesMarkerBetweenViews(t *testing.T) {
	b := seeded()
	loc, ok := b.Find(oid(1).Hex())
	assert.True(t, ok)

	loc.Status = models.LocationCompleted
	assert.True(t, b.MergeUpdated(loc))

	assert.NotContains(t, ids(b.Visible(nil)), "Water Station")
	assert.Contains(t, ids(b.Completed()), "Water Station")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	b := NewMarkerBoard()
	b.Replace([]models.Location{
		marker(1, "Water Station", models.CategorySupplies, ""),
		marker(2, "Shelter", models.CategoryLodging, ""),
	})
	got := b.Search("water")
	assert.Len(t, got, 1)
	assert.Equal(t, "Water Station", got[0].Title)

	assert.Empty(t, b.Search("   "))
}

func TestSearchCoversDescriptionCategoryAndSupplies(t *testing.T) {
	b := seeded()
	assert.Equal(t, []string{"Water Station", "Clinic"}, ids(b.Search("WATER")))
	assert.Equal(t, []string{"光復國小避難所"}, ids(b.Search("毛毯")))
	assert.Equal(t, []string{"Clinic"}, ids(b.Search("醫療")))
	// search sees completed markers, the map display does not
	assert.Equal(t, []string{"Shuttle bus"}, ids(b.Search("shuttle")))
	assert.Empty(t, b.Display("shuttle", nil))
}

func TestDisplayModesAreExclusive(t *testing.T) {
	b := seeded()
	onlyLodging := Filters{models.CategoryLodging}

	assert.Equal(t, []string{"光復國小避難所"}, ids(b.Display("", onlyLodging)))
	// a query ignores the category filter
	assert.Equal(t, []string{"Water Station", "Clinic"}, ids(b.Display("water", onlyLodging)))
}

func TestMergeKeepsIDsUnique(t *testing.T) {
	b := seeded()
	dup := marker(2, "renamed", models.CategoryLodging, "")

	b.MergeCreated(dup)
	b.MergeCreated(marker(9, "new", models.CategoryOther, ""))
	b.MergeCreated(marker(9, "merged", models.CategoryOther, ""))

	seen := map[bson.ObjectID]int{}
	for _, l := range b.Snapshot() {
		seen[l.ID]++
	}
	assert.Equal(t, 1, seen[oid(2)])
	assert.False(t, b.MergeUpdated(marker(42, "ghost", models.CategoryOther, "")))

	got, _ := b.Find(oid(2).Hex())
	assert.Equal(t, "renamed", got.Title)
	last := b.Snapshot()[b.Len()-1]
	assert.Equal(t, oid(9), last.ID, "a created marker is appended")
}

func TestSnapshotIsACopy(t *testing.T) {
	b := seeded()
	snap := b.Snapshot()
	snap[0].Title = "mutated"
	got, _ := b.Find(oid(1).Hex())
	assert.Equal(t, "Water Station", got.Title)

	b.Replace(nil)
	assert.NotNil(t, b.Snapshot())
	assert.Zero(t, b.Len())
}

func TestFilters(t *testing.T) {
	f := ParseFilters(" 醫療,交通,bogus,醫療,")
	assert.Equal(t, Filters{models.CategoryMedical, models.CategoryTransport}, f)
	assert.Equal(t, "醫療,交通", f.String())

	f = f.Toggle(models.CategoryMedical)
	assert.Equal(t, Filters{models.CategoryTransport}, f)
	f = f.Toggle(models.CategoryOther)
	assert.True(t, f.Has(models.CategoryOther))

	assert.True(t, f.Clear().Empty())
	assert.True(t, f.Clear().Matches(models.CategoryLabor))
	assert.Len(t, f.SelectAll(), len(models.Categories()))
	assert.True(t, ParseFilters("").Empty())
}

func TestChannelBoard(t *testing.T) {
	b := NewChannelBoard()
	b.Replace([]models.Channel{
		{ID: oid(1), Type: models.ChannelHelpRequest, Status: models.ChannelActive, Title: "a"},
		{ID: oid(2), Type: models.ChannelAnnouncement, Status: models.ChannelActive, Title: "b"},
		{ID: oid(3), Type: models.ChannelHelpRequest, Status: models.ChannelResolved, Title: "c"},
	})

	b.MergeCreated(models.Channel{ID: oid(4), Type: models.ChannelHelpRequest, Status: models.ChannelActive, Title: "d"})
	assert.Equal(t, oid(4), b.Snapshot()[0].ID, "new posts go first")

	help := b.ByTab(models.ChannelHelpRequest, StatusAll)
	assert.Len(t, help, 3)
	assert.Len(t, b.ByTab(models.ChannelHelpRequest, models.ChannelResolved), 1)
	assert.Len(t, b.ByTab("", ""), 4)
	assert.Empty(t, b.ByTab(models.ChannelNotice, ""))

	assert.True(t, b.MergeUpdated(models.Channel{ID: oid(1), Type: models.ChannelHelpRequest, Status: models.ChannelExpired}))
	assert.Len(t, b.ByTab(models.ChannelHelpRequest, models.ChannelExpired), 1)

	b.Drop(oid(1).Hex())
	_, ok := b.Find(oid(1).Hex())
	assert.False(t, ok)
}

func TestGeoJSON(t *testing.T) {
	b := seeded()
	fc := GeoJSON(b.Visible(nil))

	assert.Len(t, fc.Features, 3)
	f := fc.Features[0]
	assert.Equal(t, oid(1).Hex(), f.ID)
	assert.Equal(t, "Water Station", f.Properties["title"])
	assert.Equal(t, string(models.LocationActive), f.Properties["status"], "a missing status reads as active")
	assert.InDelta(t, 121.6, f.Geometry.(orb.Point).X(), 1e-9)
	assert.Len(t, fc.BBox, 4)

	assert.Empty(t, GeoJSON(nil).BBox)
}
