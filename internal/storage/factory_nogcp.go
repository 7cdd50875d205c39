//go:build !gcp

package storage

import (
	"context"
	"fmt"
)

func newGCSBucketFromEnv(ctx context.Context) (Bucket, error) {
	return nil, fmt.Errorf("GCS storage is not enabled in this build (use -tags gcp)")
}
