package board

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"hualien-aid/internal/models"
)

// GeoJSON renders markers as point features carrying the display fields.
// The collection gets a bbox when it has at least one feature.
func GeoJSON(locs []models.Location) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	points := make(orb.MultiPoint, 0, len(locs))
	for _, l := range locs {
		pt := l.Position.Point()
		points = append(points, pt)

		f := geojson.NewFeature(pt)
		f.ID = l.ID.Hex()
		style := l.Category.Style()
		f.Properties["title"] = l.Title
		f.Properties["description"] = l.Description
		f.Properties["category"] = string(l.Category)
		f.Properties["status"] = string(l.EffectiveStatus())
		f.Properties["color"] = style.Color
		f.Properties["icon"] = style.Icon
		f.Properties["supplies"] = len(l.Supplies)
		f.Properties["messages"] = len(l.Messages)
		fc.Append(f)
	}
	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}
	return fc
}
