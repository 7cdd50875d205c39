//go:build gcp

package storage

import (
	"context"
	"fmt"
	"os"
)

func newGCSBucketFromEnv(ctx context.Context) (Bucket, error) {
	bucket := envOr("IMAGE_GCS_BUCKET", os.Getenv("IMAGE_BUCKET"))
	if bucket == "" {
		return nil, fmt.Errorf("IMAGE_GCS_BUCKET is required for GCS storage")
	}
	return NewGCSBucket(ctx, GCSBucketConfig{
		Bucket:        bucket,
		PublicBaseURL: os.Getenv("IMAGE_GCS_PUBLIC_URL"),
	})
}
