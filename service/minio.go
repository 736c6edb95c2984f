package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioAttachments uploads decision documents to a bucket and references them
// by presigned URLs that expire after ExpireDays.
type MinioAttachments struct {
	client *minio.Client
	bucket string
	config *config.MinioConfig
}

func NewMinioAttachments(cfg *config.MinioConfig) (*MinioAttachments, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioAttachments{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *MinioAttachments) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func (s *MinioAttachments) Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (Attachment, error) {
	key := uuid.New().String()
	objectName := ObjectName(key, filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to upload file: %w", err)
	}

	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	attachmentsTotal.WithLabelValues("minio").Inc()
	return Attachment{
		Key:         key,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		URL:         u.String(),
	}, nil
}

// ObjectName is the bucket path of an uploaded decision document
func ObjectName(key, filename string) string {
	return path.Join("putusan", key, path.Base(filename))
}
