package dto

import (
	"errors"
	"strings"

	"hualien-aid/internal/models"
)

// CreateLocationReq accepts either a JSON body with position [lat, lng] or a
// multipart form with separate lat and lng fields.
type CreateLocationReq struct {
	Position    []float64 `json:"position"    form:"-"`
	Lat         *float64  `json:"lat"         form:"lat"`
	Lng         *float64  `json:"lng"         form:"lng"`
	Title       string    `json:"title"       form:"title"`
	Description string    `json:"description" form:"description"`
	Category    string    `json:"category"    form:"category"`
	Supplies    []string  `json:"supplies"    form:"supplies"`
}

func (r CreateLocationReq) Draft() (models.LocationDraft, error) {
	var pos models.Position
	switch {
	case len(r.Position) == 2:
		pos = models.NewPosition(r.Position[0], r.Position[1])
	case r.Lat != nil && r.Lng != nil:
		pos = models.NewPosition(*r.Lat, *r.Lng)
	default:
		return models.LocationDraft{}, errors.New("position is required")
	}

	supplies := make([]string, 0, len(r.Supplies))
	for _, s := range r.Supplies {
		if s = text(s); s != "" {
			supplies = append(supplies, s)
		}
	}

	d := models.LocationDraft{
		Position:    pos,
		Title:       text(r.Title),
		Description: text(r.Description),
		Category:    models.Category(text(r.Category)),
		Status:      models.LocationActive,
		Supplies:    supplies,
	}
	return d, d.Validate()
}

type SupplyReq struct {
	Item string `json:"item" form:"item"`
}

type MessageReq struct {
	Author  string `json:"author"  form:"author"`
	Content string `json:"content" form:"content"`
}

func (r MessageReq) Draft() (models.MessageDraft, error) {
	d := models.MessageDraft{Author: strings.Clone(r.Author), Content: strings.Clone(r.Content)}
	return d, d.Validate()
}

type NavigateResp struct {
	URL string `json:"url"`
}
