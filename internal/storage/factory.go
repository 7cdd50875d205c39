package storage

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BucketType string

const (
	BucketTypeGridFS BucketType = "gridfs"
	BucketTypeS3     BucketType = "s3"
	BucketTypeGCS    BucketType = "gcs"
)

// NewBucketFromEnv picks the image store from the environment.
//
//   - IMAGE_STORAGE_TYPE: "gridfs" (default), "s3" or "gcs"
//   - IMAGE_BUCKET: bucket name (default location-images)
//
// For S3:
//   - IMAGE_S3_BUCKET (falls back to IMAGE_BUCKET)
//   - IMAGE_S3_REGION or AWS_REGION
//   - IMAGE_S3_ENDPOINT (optional)
//   - IMAGE_S3_PUBLIC_URL (optional)
//
// For GCS (needs -tags gcp):
//   - IMAGE_GCS_BUCKET (falls back to IMAGE_BUCKET)
//   - IMAGE_GCS_PUBLIC_URL (optional)
func NewBucketFromEnv(ctx context.Context, db *mongo.Database, publicBaseURL string) (Bucket, error) {
	bucketType := BucketType(os.Getenv("IMAGE_STORAGE_TYPE"))
	if bucketType == "" {
		bucketType = BucketTypeGridFS
	}

	switch bucketType {
	case BucketTypeGridFS:
		if db == nil {
			return nil, fmt.Errorf("gridfs storage needs a database")
		}
		return NewGridFSBucket(db, envOr("IMAGE_BUCKET", DefaultBucket), publicBaseURL), nil
	case BucketTypeS3:
		return newS3BucketFromEnv(ctx)
	case BucketTypeGCS:
		return newGCSBucketFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unsupported image storage type: %s", bucketType)
	}
}

func newS3BucketFromEnv(ctx context.Context) (Bucket, error) {
	bucket := envOr("IMAGE_S3_BUCKET", os.Getenv("IMAGE_BUCKET"))
	if bucket == "" {
		return nil, fmt.Errorf("IMAGE_S3_BUCKET is required for S3 storage")
	}

	region := envOr("IMAGE_S3_REGION", os.Getenv("AWS_REGION"))
	if region == "" {
		region = "ap-northeast-1"
	}

	return NewS3Bucket(ctx, S3BucketConfig{
		Bucket:        bucket,
		Region:        region,
		Endpoint:      os.Getenv("IMAGE_S3_ENDPOINT"),
		PublicBaseURL: os.Getenv("IMAGE_S3_PUBLIC_URL"),
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
