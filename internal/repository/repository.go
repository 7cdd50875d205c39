package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"hualien-aid/internal/feed"
)

const (
	LocationsCollection = "locations"
	ChannelsCollection  = "channels"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
)

// now is truncated to what BSON dates can hold, so a returned row compares
// equal to the same row read back later.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func findAllNewestFirst[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return items, nil
}

func updateByID[T any](ctx context.Context, col *mongo.Collection, id string, update bson.M) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", col.Name(), id, err)
	}
	return &out, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", col.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// announce tells other instances the collection changed. A failed publish
// does not undo the write; the next successful one converges everybody.
func announce(ctx context.Context, pub feed.Publisher, collection string) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, collection); err != nil {
		log.Warnf("repository: change signal for %s not sent: %v", collection, err)
	}
}
