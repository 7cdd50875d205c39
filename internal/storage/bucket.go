// Package storage holds the binary object stores images are written to.
// Every backend hands out permanent, unauthenticated read URLs.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

// DefaultBucket is the bucket name used when none is configured.
const DefaultBucket = "location-images"

var ErrObjectNotFound = errors.New("object not found")

type Bucket interface {
	Name() string
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	// Open returns the object body and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

func joinURL(base string, parts ...string) string {
	out := strings.TrimRight(base, "/")
	for _, p := range parts {
		out += "/" + strings.Trim(p, "/")
	}
	return out
}
