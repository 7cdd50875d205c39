package feed

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoSource turns a change stream into signals. Change streams need a
// replica set or sharded cluster; use the redis backend otherwise.
type MongoSource struct {
	db *mongo.Database
}

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

func (s *MongoSource) Watch(ctx context.Context, collection string) (<-chan Signal, error) {
	// empty pipeline: insert, update, replace and delete all count
	cs, err := s.db.Collection(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", collection, err)
	}

	ch := make(chan Signal, 1)
	go func() {
		defer close(ch)
		defer cs.Close(context.Background())

		for cs.Next(ctx) {
			notify(ch)
		}
		if err := cs.Err(); err != nil && ctx.Err() == nil {
			log.Errorf("feed: change stream on %s stopped: %v", collection, err)
		}
	}()
	return ch, nil
}
