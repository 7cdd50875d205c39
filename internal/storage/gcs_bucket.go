//go:build gcp

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

type GCSBucket struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

type GCSBucketConfig struct {
	Bucket        string
	PublicBaseURL string
}

// NewGCSBucket uses application default credentials.
func NewGCSBucket(ctx context.Context, cfg GCSBucketConfig) (*GCSBucket, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GCSBucket{client: client, bucket: cfg.Bucket, baseURL: base}, nil
}

func (b *GCSBucket) Name() string { return b.bucket }

func (b *GCSBucket) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	w := b.client.Bucket(b.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (b *GCSBucket) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := b.client.Bucket(b.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, "", ErrObjectNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("gcs get %s: %w", key, err)
	}
	return r, r.Attrs.ContentType, nil
}

func (b *GCSBucket) Remove(ctx context.Context, key string) error {
	err := b.client.Bucket(b.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("gcs delete %s: %w", key, err)
	}
	return nil
}

func (b *GCSBucket) PublicURL(key string) string {
	return joinURL(b.baseURL, key)
}

func (b *GCSBucket) Close() error {
	return b.client.Close()
}
