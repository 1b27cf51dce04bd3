package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"seeds-backend/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// SeedContentType is the content type every seed image is stored with.
const SeedContentType = "image/jpeg"

type MinIOClient struct {
	client     *minio.Client
	bucketName string
	publicBase string
}

// NewMinIOClient creates the client, makes the bucket when missing and opens
// it for anonymous reads so that PublicURL links are fetchable.
func NewMinIOClient(ctx context.Context, cfg config.MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", cfg.Bucket)
	}

	if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket)); err != nil {
		return nil, fmt.Errorf("failed to set bucket policy: %w", err)
	}

	publicBase := cfg.PublicURL
	if publicBase == "" {
		publicBase = client.EndpointURL().String()
	}

	return &MinIOClient{
		client:     client,
		bucketName: cfg.Bucket,
		publicBase: publicBase,
	}, nil
}

// Upload stores data under name and returns the stored path.
func (m *MinIOClient) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	info, err := m.client.PutObject(ctx, m.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", info.Key)
	return info.Key, nil
}

// PublicURL resolves a stored path to a publicly fetchable URL.
func (m *MinIOClient) PublicURL(path string) string {
	return publicObjectURL(m.publicBase, m.bucketName, path)
}

// SeedObjectName returns the object key for a seed image uploaded at t.
// Two uploads in the same millisecond get the same key and the later one
// overwrites the earlier.
func SeedObjectName(t time.Time) string {
	return fmt.Sprintf("seed_%d.jpg", t.UnixMilli())
}

func publicObjectURL(base, bucket, path string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + escapeObjectPath(path)
}

func escapeObjectPath(path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, bucket)
}
