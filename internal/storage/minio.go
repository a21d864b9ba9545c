package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage is a thin wrapper around the minio client used to fetch seed fixtures.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage creates a MinIO client for the configured bucket.
func NewMinIOStorage(cfg *MinIOConfig) (*MinIOStorage, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	return &MinIOStorage{client: mc, bucket: cfg.Bucket}, nil
}

// Bucket is the bucket objects are read from.
func (s *MinIOStorage) Bucket() string { return s.bucket }

// DownloadFile returns a ReadCloser for the stored object.
func (s *MinIOStorage) DownloadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get %s/%s: %w", s.bucket, key, err)
	}
	// stat so a missing object fails here rather than on first read
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("minio stat %s/%s: %w", s.bucket, key, err)
	}
	return obj, nil
}
