package dto

import (
	"fmt"
	"strings"
	"time"

	"hualien-aid/internal/models"
	"hualien-aid/internal/utils"
)

type ChannelLocationReq struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

// CreateChannelReq takes tags as one comma separated string. In a multipart
// form the location is flattened into location_* fields.
type CreateChannelReq struct {
	Type      string              `json:"type"       form:"type"`
	Title     string              `json:"title"      form:"title"`
	Content   string              `json:"content"    form:"content"`
	Author    string              `json:"author"     form:"author"`
	Contact   string              `json:"contact"    form:"contact"`
	Priority  string              `json:"priority"   form:"priority"`
	Tags      string              `json:"tags"       form:"tags"`
	ExpiresAt string              `json:"expires_at" form:"expires_at"`
	Location  *ChannelLocationReq `json:"location"   form:"-"`

	LocationName string   `json:"-" form:"location_name"`
	LocationLat  *float64 `json:"-" form:"location_lat"`
	LocationLng  *float64 `json:"-" form:"location_lng"`
}

// expiryLayouts covers RFC 3339 and the value of an HTML datetime-local input.
var expiryLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid expires_at: %q", raw)
}

func (r CreateChannelReq) Draft() (models.ChannelDraft, error) {
	expires, err := parseExpiry(r.ExpiresAt)
	if err != nil {
		return models.ChannelDraft{}, err
	}

	loc := r.Location
	if loc == nil && strings.TrimSpace(r.LocationName) != "" {
		loc = &ChannelLocationReq{Name: r.LocationName, Lat: r.LocationLat, Lng: r.LocationLng}
	}
	var where *models.ChannelLocation
	if loc != nil {
		where = &models.ChannelLocation{Name: text(loc.Name), Lat: loc.Lat, Lng: loc.Lng}
	}

	d := models.ChannelDraft{
		Type:      models.ChannelType(text(r.Type)),
		Title:     text(r.Title),
		Content:   text(r.Content),
		Author:    text(r.Author),
		Contact:   text(r.Contact),
		Priority:  models.Priority(text(r.Priority)),
		Status:    models.ChannelActive,
		Tags:      utils.SplitTags(r.Tags),
		Location:  where,
		ExpiresAt: expires,
	}
	return d, d.Validate()
}
