package models

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Position is a [latitude, longitude] pair, stored and served as a two-element array.
type Position [2]float64

func NewPosition(lat, lng float64) Position { return Position{lat, lng} }

func (p Position) Lat() float64 { return p[0] }
func (p Position) Lng() float64 { return p[1] }

func (p Position) Valid() bool {
	lat, lng := p.Lat(), p.Lng()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Point returns the position in orb's (lng, lat) order.
func (p Position) Point() orb.Point { return orb.Point{p.Lng(), p.Lat()} }

type Message struct {
	ID        string    `json:"id"               bson:"id"`
	Author    string    `json:"author"           bson:"author"`
	Content   string    `json:"content"          bson:"content"`
	Timestamp time.Time `json:"timestamp"        bson:"timestamp"`
	Images    []string  `json:"images,omitempty" bson:"images,omitempty"`
}

// MessageDraft is what a user submits; id and timestamp are assigned on append.
type MessageDraft struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

func (d MessageDraft) Validate() error {
	if strings.TrimSpace(d.Author) == "" {
		return errors.New("author is required")
	}
	if strings.TrimSpace(d.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}

type Location struct {
	ID          bson.ObjectID  `json:"id"               bson:"_id,omitempty"`
	Position    Position       `json:"position"         bson:"position"`
	Title       string         `json:"title"            bson:"title"`
	Description string         `json:"description"      bson:"description"`
	Category    Category       `json:"category"         bson:"category"`
	Status      LocationStatus `json:"status,omitempty" bson:"status,omitempty"`
	Supplies    []string       `json:"supplies"         bson:"supplies"`
	Images      []string       `json:"images"           bson:"images"`
	Messages    []Message      `json:"messages"         bson:"messages"`
	CreatedAt   time.Time      `json:"created_at"       bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"       bson:"updated_at"`
}

func (l Location) IsCompleted() bool { return l.Status == LocationCompleted }

// EffectiveStatus reads a missing status as Active.
func (l Location) EffectiveStatus() LocationStatus {
	if l.Status == "" {
		return LocationActive
	}
	return l.Status
}

// LocationDraft is a marker before the remote store assigns id and timestamps.
type LocationDraft struct {
	Position    Position       `json:"position"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    Category       `json:"category"`
	Status      LocationStatus `json:"status,omitempty"`
	Supplies    []string       `json:"supplies"`
	Images      []string       `json:"images"`
	Messages    []Message      `json:"messages"`
}

func (d LocationDraft) Validate() error {
	if !d.Position.Valid() {
		return errors.New("position must be a valid [lat, lng] pair")
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return errors.New("description is required")
	}
	if !d.Category.Valid() {
		return errors.New("unknown category: " + string(d.Category))
	}
	if d.Status != "" && !d.Status.Valid() {
		return errors.New("unknown status: " + string(d.Status))
	}
	return nil
}

// Document builds the stored row. Nil lists become empty so the row always
// carries arrays.
func (d LocationDraft) Document(now time.Time) Location {
	return Location{
		Position:    d.Position,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Status:      d.Status,
		Supplies:    orEmpty(d.Supplies),
		Images:      orEmpty(d.Images),
		Messages:    orEmptyMessages(d.Messages),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LocationPatch is a partial update; nil fields are left untouched.
// Position and category have no patch field: they are fixed at creation.
type LocationPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *LocationStatus `json:"status,omitempty"`
	Supplies    *[]string       `json:"supplies,omitempty"`
	Images      *[]string       `json:"images,omitempty"`
	Messages    *[]Message      `json:"messages,omitempty"`
}

func (p LocationPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Supplies == nil && p.Images == nil && p.Messages == nil
}

func (p LocationPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return errors.New("unknown status: " + string(*p.Status))
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("title must not be empty")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return errors.New("description must not be empty")
	}
	return nil
}

// Apply returns l with the patch fields copied over.
func (p LocationPatch) Apply(l Location) Location {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Supplies != nil {
		l.Supplies = orEmpty(*p.Supplies)
	}
	if p.Images != nil {
		l.Images = orEmpty(*p.Images)
	}
	if p.Messages != nil {
		l.Messages = orEmptyMessages(*p.Messages)
	}
	return l
}

// Set returns the $set document for the supplied fields.
func (p LocationPatch) Set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Supplies != nil {
		set["supplies"] = orEmpty(*p.Supplies)
	}
	if p.Images != nil {
		set["images"] = orEmpty(*p.Images)
	}
	if p.Messages != nil {
		set["messages"] = orEmptyMessages(*p.Messages)
	}
	return set
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyMessages(m []Message) []Message {
	if m == nil {
		return []Message{}
	}
	return m
}
