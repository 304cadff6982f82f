// Package kvstore implements repository.KeyValueStore on top of gocloud.dev buckets
// and the location cache on top of any KeyValueStore.
package kvstore

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/goccy/go-json"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted in storage.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const jsonContentType = "application/json"

// blobStore keeps one JSON object per key in a bucket
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// OpenBlobStore opens the bucket at bucketURL (mem://, file://, s3://, gs://).
// Every key is stored under keyPrefix when it is not empty.
func OpenBlobStore(ctx context.Context, bucketURL, keyPrefix string, logger *slog.Logger) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if keyPrefix != "" {
		bucket = blob.PrefixedBucket(bucket, keyPrefix)
	}

	return NewBlobStore(bucket, logger), nil
}

// NewBlobStore wraps an already opened bucket
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueStore {
	return &blobStore{
		bucket: bucket,
		logger: logger,
	}
}

func (s *blobStore) Load(ctx context.Context, key string, out any) error {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrKeyNotFound
		}

		return errors.Wrapf(err, "failed to read key %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode key %s", key)
	}

	return nil
}

func (s *blobStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode key %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: jsonContentType}); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
