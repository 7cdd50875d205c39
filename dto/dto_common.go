package dto

import (
	"strings"

	"hualien-aid/internal/models"
)

// text trims a request field and detaches it from the request buffer.
func text(s string) string {
	return strings.Clone(strings.TrimSpace(s))
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// GeocodeErrorResponse is returned when an address cannot be placed.
type GeocodeErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

type StatusReq struct {
	Status string `json:"status" form:"status"`
}

type EnumResp struct {
	Value string `json:"value"`
	models.Style
}

type MetaResp struct {
	Categories      []EnumResp `json:"categories"`
	Priorities      []EnumResp `json:"priorities"`
	ChannelTypes    []string   `json:"channel_types"`
	ChannelStatuses []EnumResp `json:"channel_statuses"`
	CommonSupplies  []string   `json:"common_supplies"`
	MapCenter       [2]float64 `json:"map_center"`
}

type PlaceResp struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type,omitempty"`
	Class       string  `json:"class,omitempty"`
}
