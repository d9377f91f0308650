package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/habiro-server/internal/model"
)

const DefaultPresignTTL = time.Hour

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

var _ model.AvatarStorage = (*AvatarClient)(nil)

// AvatarClient hands out time-limited URLs for profile pictures stored in
// a MinIO bucket.
type AvatarClient struct {
	api        minioAPI
	bucket     string
	presignTTL time.Duration
}

// NewAvatarClient creates an avatar client using a real *minio.Client instance.
func NewAvatarClient(ctx context.Context, client *minio.Client, bucket string, presignTTL time.Duration) (*AvatarClient, error) {
	return NewAvatarClientWithAPI(ctx, client, bucket, presignTTL)
}

// NewAvatarClientWithAPI allows injecting a mockable API (used in tests).
func NewAvatarClientWithAPI(ctx context.Context, api minioAPI, bucket string, presignTTL time.Duration) (*AvatarClient, error) {
	if presignTTL <= 0 {
		presignTTL = DefaultPresignTTL
	}
	c := &AvatarClient{
		api:        api,
		bucket:     bucket,
		presignTTL: presignTTL,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

// ensureBucketExists creates the bucket if it doesn't exist
func (c *AvatarClient) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// AvatarURL returns a presigned GET URL for key. Keys that are already
// absolute URLs are returned unchanged; a missing object yields "".
func (c *AvatarClient) AvatarURL(ctx context.Context, key string) (string, error) {
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}

	ok, err := c.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	u, err := c.api.PresignedGetObject(ctx, c.bucket, key, c.presignTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return u.String(), nil
}

// Exists checks if the object exists in the bucket.
func (c *AvatarClient) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}
