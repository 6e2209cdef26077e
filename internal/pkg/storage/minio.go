package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

const minioSetupTimeout = 10 * time.Second

// PhotoStore uploads photo evidence and returns a stable public URL
type PhotoStore interface {
	Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error)
}

// MinioStore is an S3-compatible PhotoStore backed by minio-go
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore creates a PhotoStore against an S3-compatible endpoint and
// ensures the bucket exists.
func NewMinioStore(cfg models.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), minioSetupTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the object and returns its public URL
func (s *MinioStore) Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error) {
	objectPath = strings.TrimLeft(objectPath, "/")

	_, err := s.client.PutObject(ctx, s.bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectPath, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectPath), nil
}
