// Package geocode turns free text into coordinates through a Nominatim
// compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "hualien-aid/1.0"
	DefaultTimeout   = 10 * time.Second
)

type Candidate struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Class       string  `json:"class"`
}

type Query struct {
	Text  string
	Limit int
}

type Searcher interface {
	Search(ctx context.Context, q Query) ([]Candidate, error)
}

type Config struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	CountryCodes string
	Language     string
}

// Client queries /search and always sends a User-Agent.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CountryCodes == "" {
		cfg.CountryCodes = "tw"
	}
	if cfg.Language == "" {
		cfg.Language = "zh-TW"
	}
	return &Client{cfg: cfg}
}

// place is one row of the upstream answer; coordinates arrive as strings.
type place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Class       string `json:"class"`
}

func (c *Client) Search(ctx context.Context, q Query) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return []Candidate{}, nil
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", text)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")
	params.Set("countrycodes", c.cfg.CountryCodes)
	params.Set("accept-language", c.cfg.Language)

	a := fiber.Get(strings.TrimRight(c.cfg.BaseURL, "/") + "/search").
		QueryString(params.Encode()).
		UserAgent(c.cfg.UserAgent).
		Timeout(c.cfg.Timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("geocode %q: %w", text, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("geocode %q: upstream status %d", text, code)
	}

	var rows []place
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("geocode %q: decode: %w", text, err)
	}

	out := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		cand, ok := r.candidate()
		if ok {
			out = append(out, cand)
		}
	}
	return out, nil
}

func (p place) candidate() (Candidate, bool) {
	lat, err1 := strconv.ParseFloat(p.Lat, 64)
	lng, err2 := strconv.ParseFloat(p.Lon, 64)
	if err1 != nil || err2 != nil {
		return Candidate{}, false
	}
	return Candidate{DisplayName: p.DisplayName, Lat: lat, Lng: lng, Type: p.Type, Class: p.Class}, true
}

// Label is the first segment of the display name, e.g. "花蓮火車站".
func (c Candidate) Label() string {
	head, _, _ := strings.Cut(c.DisplayName, ",")
	return strings.TrimSpace(head)
}
