// Package storage uploads avatar images to an S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"auth_backend/internal/config"
)

// S3AvatarStorage stores avatar images in a single bucket and returns their
// public URLs. It works against AWS S3 or any S3-compatible endpoint such as
// MinIO.
type S3AvatarStorage struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// NewS3AvatarStorage builds the S3 client once from the loaded configuration.
func NewS3AvatarStorage(ctx context.Context, cfg *config.Config) (*S3AvatarStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3AvatarStorage{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimSuffix(cfg.S3Endpoint, "/"),
	}, nil
}

// Upload writes the image to the bucket under a date-partitioned random key
// and returns the public URL of the stored object.
func (s *S3AvatarStorage) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := avatarKey()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// avatarKey returns a collision-free object key partitioned by upload date.
func avatarKey() string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
