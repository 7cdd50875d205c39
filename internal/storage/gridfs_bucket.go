package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GridFSBucket keeps images in the same MongoDB as the records. The API
// serves them back under /storage/<bucket>/<key>.
type GridFSBucket struct {
	bucket  *mongo.GridFSBucket
	name    string
	baseURL string
}

func NewGridFSBucket(db *mongo.Database, name, publicBaseURL string) *GridFSBucket {
	if name == "" {
		name = DefaultBucket
	}
	return &GridFSBucket{
		bucket:  db.GridFSBucket(options.GridFSBucket().SetName(name)),
		name:    name,
		baseURL: publicBaseURL,
	}
}

func (b *GridFSBucket) Name() string { return b.name }

func (b *GridFSBucket) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	if _, err := b.bucket.UploadFromStream(ctx, key, body, opts); err != nil {
		return fmt.Errorf("gridfs put %s: %w", key, err)
	}
	return nil
}

func (b *GridFSBucket) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	stream, err := b.bucket.OpenDownloadStreamByName(ctx, key)
	if errors.Is(err, mongo.ErrFileNotFound) {
		return nil, "", ErrObjectNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("gridfs open %s: %w", key, err)
	}

	contentType := "application/octet-stream"
	if meta := stream.GetFile().Metadata; meta != nil {
		if v, ok := meta.Lookup("contentType").StringValueOK(); ok && v != "" {
			contentType = v
		}
	}
	return stream, contentType, nil
}

// Remove deletes every revision stored under key.
func (b *GridFSBucket) Remove(ctx context.Context, key string) error {
	cur, err := b.bucket.Find(ctx, bson.M{"filename": key})
	if err != nil {
		return fmt.Errorf("gridfs find %s: %w", key, err)
	}
	defer cur.Close(ctx)

	var files []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &files); err != nil {
		return fmt.Errorf("gridfs find %s: %w", key, err)
	}
	if len(files) == 0 {
		return ErrObjectNotFound
	}
	for _, f := range files {
		if err := b.bucket.Delete(ctx, f.ID); err != nil {
			return fmt.Errorf("gridfs delete %s: %w", key, err)
		}
	}
	return nil
}

func (b *GridFSBucket) PublicURL(key string) string {
	return joinURL(b.baseURL, "storage", b.name, key)
}
