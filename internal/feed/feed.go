// Package feed carries "collection changed" signals from the remote store to
// subscribers. Signals have no payload: a receiver re-reads the whole
// collection. Every channel handed out has capacity one and is written with a
// non-blocking send, so a burst of changes collapses into a single pending
// signal.
package feed

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Signal says the watched collection changed in some way.
type Signal struct{}

type Source interface {
	// Watch returns a channel that receives a Signal after any insert, update
	// or delete on collection. The channel closes when ctx ends or the
	// underlying stream stops.
	Watch(ctx context.Context, collection string) (<-chan Signal, error)
}

type Publisher interface {
	Publish(ctx context.Context, collection string) error
}

type Backend string

const (
	BackendMongo Backend = "mongo"
	BackendRedis Backend = "redis"
	BackendLocal Backend = "local"
)

// Noop is the publisher used when the store itself emits change events.
type Noop struct{}

func (Noop) Publish(context.Context, string) error { return nil }

// New picks the source/publisher pair for backend. db is used by the mongo
// backend, rdb by the redis backend.
func New(backend Backend, db *mongo.Database, rdb *redis.Client) (Source, Publisher, error) {
	switch backend {
	case BackendMongo, "":
		if db == nil {
			return nil, nil, fmt.Errorf("feed: mongo backend needs a database")
		}
		return NewMongoSource(db), Noop{}, nil
	case BackendRedis:
		if rdb == nil {
			return nil, nil, fmt.Errorf("feed: redis backend needs a client")
		}
		r := NewRedisFeed(rdb)
		return r, r, nil
	case BackendLocal:
		h := NewHub()
		return h, h, nil
	default:
		return nil, nil, fmt.Errorf("feed: unsupported backend %q", backend)
	}
}

// ChannelName is the pub/sub channel for a collection.
func ChannelName(collection string) string {
	return collection + "_changes"
}

func notify(ch chan Signal) {
	select {
	case ch <- Signal{}:
	default:
	}
}
