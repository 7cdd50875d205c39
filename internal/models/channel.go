package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ChannelLocation struct {
	Name string   `json:"name"          bson:"name"`
	Lat  *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// Channel is a bulletin board post. ExpiresAt is informational only: nothing
// moves a post to Expired except an explicit status change.
type Channel struct {
	ID        bson.ObjectID    `json:"id"                   bson:"_id,omitempty"`
	Type      ChannelType      `json:"type"                 bson:"type"`
	Title     string           `json:"title"                bson:"title"`
	Content   string           `json:"content"              bson:"content"`
	Status    ChannelStatus    `json:"status"               bson:"status"`
	Priority  Priority         `json:"priority"             bson:"priority"`
	Author    string           `json:"author"               bson:"author"`
	Contact   string           `json:"contact"              bson:"contact"`
	Images    []string         `json:"images"               bson:"images"`
	Tags      []string         `json:"tags"                 bson:"tags"`
	Location  *ChannelLocation `json:"location,omitempty"   bson:"location,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"           bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"           bson:"updated_at"`
}

type ChannelDraft struct {
	Type      ChannelType      `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Status    ChannelStatus    `json:"status,omitempty"`
	Priority  Priority         `json:"priority"`
	Author    string           `json:"author"`
	Contact   string           `json:"contact"`
	Images    []string         `json:"images"`
	Tags      []string         `json:"tags"`
	Location  *ChannelLocation `json:"location,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
}

func (d ChannelDraft) Validate() error {
	if !d.Type.Valid() {
		return errors.New("unknown channel type: " + string(d.Type))
	}
	required := [][2]string{
		{"title", d.Title},
		{"content", d.Content},
		{"author", d.Author},
		{"contact", d.Contact},
	}
	for _, f := range required {
		if strings.TrimSpace(f[1]) == "" {
			return errors.New(f[0] + " is required")
		}
	}
	if !d.Priority.Valid() {
		return errors.New("unknown priority: " + string(d.Priority))
	}
	if d.Status != "" && !d.Status.Valid() {
		return errors.New("unknown status: " + string(d.Status))
	}
	if d.Location != nil && strings.TrimSpace(d.Location.Name) == "" {
		return errors.New("location name is required when a location is given")
	}
	return nil
}

// Document builds the stored row; a new post starts Active unless told otherwise.
func (d ChannelDraft) Document(now time.Time) Channel {
	status := d.Status
	if status == "" {
		status = ChannelActive
	}
	return Channel{
		Type:      d.Type,
		Title:     d.Title,
		Content:   d.Content,
		Status:    status,
		Priority:  d.Priority,
		Author:    d.Author,
		Contact:   d.Contact,
		Images:    orEmpty(d.Images),
		Tags:      orEmpty(d.Tags),
		Location:  d.Location,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChannelPatch is a partial update. Type and priority are fixed at creation.
type ChannelPatch struct {
	Title   *string        `json:"title,omitempty"`
	Content *string        `json:"content,omitempty"`
	Status  *ChannelStatus `json:"status,omitempty"`
	Images  *[]string      `json:"images,omitempty"`
	Tags    *[]string      `json:"tags,omitempty"`
}

func (p ChannelPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Status == nil && p.Images == nil && p.Tags == nil
}

func (p ChannelPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return errors.New("unknown status: " + string(*p.Status))
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("title must not be empty")
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

func (p ChannelPatch) Apply(c Channel) Channel {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Images != nil {
		c.Images = orEmpty(*p.Images)
	}
	if p.Tags != nil {
		c.Tags = orEmpty(*p.Tags)
	}
	return c
}

func (p ChannelPatch) Set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Images != nil {
		set["images"] = orEmpty(*p.Images)
	}
	if p.Tags != nil {
		set["tags"] = orEmpty(*p.Tags)
	}
	return set
}
