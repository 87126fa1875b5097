package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/platform/config"
)

// opTimeout bounds individual object store calls so lifecycle operations
// never hang on storage I/O.
const opTimeout = 30 * time.Second

// minioStore implements BlobStore against an S3-compatible backend.
// It is safe for concurrent use by multiple goroutines.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates a blob store backed by MinIO. It validates
// connectivity and ensures the bucket exists.
func NewMinIOStore(cfg config.MinIOConfig) (BlobStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStore{client: cli, bucket: cfg.Bucket}, nil
}

// Store validates then uploads content, keyed under the grouping key and the
// upload date so blobs stay browsable by case.
func (m *minioStore) Store(ctx context.Context, content io.Reader, size int64, filename, groupKey string) (string, error) {
	ext, err := ValidateUpload(size, filename)
	if err != nil {
		return "", err
	}
	if groupKey == "" {
		groupKey = "general"
	}
	now := time.Now().UTC()
	locator := fmt.Sprintf("%d/%02d/%s/%s.%s", now.Year(), now.Month(), groupKey, uuid.NewString(), ext)

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	contentType := mime.TypeByExtension(path.Ext(locator))
	_, err = m.client.PutObject(ctx, m.bucket, locator, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object %s: %v", apperrors.ErrStorage, locator, err)
	}
	return locator, nil
}

// Load retrieves stored content as a streaming reader. The caller's context
// governs the stream lifetime; a local timeout here would cancel the reader
// before the caller finished draining it.
func (m *minioStore) Load(ctx context.Context, locator string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, locator, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get object %s: %v", apperrors.ErrStorage, locator, err)
	}
	// GetObject is lazy; Stat forces the first round trip so missing objects
	// surface here rather than on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("%w: stat object %s: %v", apperrors.ErrStorage, locator, err)
	}
	return obj, nil
}

// Delete removes stored content by locator.
func (m *minioStore) Delete(ctx context.Context, locator string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := m.client.RemoveObject(ctx, m.bucket, locator, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: remove object %s: %v", apperrors.ErrStorage, locator, err)
	}
	return nil
}
