package snapshot

import (
	"context"
	"os"
	"strings"

	"menubuilder/internal/errors"

	"gocloud.dev/blob"

	// Local file buckets are the default destination.
	_ "gocloud.dev/blob/fileblob"
)

// OpenBucket opens the snapshot bucket for a URL like
// file:///home/user/.menubuilder. For file URLs the directory is created
// first, since fileblob refuses to open a missing directory.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if dir, ok := strings.CutPrefix(bucketURL, "file://"); ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create data directory %s", dir)
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return bucket, nil
}
